package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"

	intconfig "travelmap/internal/config"
	"travelmap/internal/domain"
)

// BookingsKey is the fixed key the whole ledger is stored under.
const BookingsKey = "travelmap:bookings"

// BookingStore persists the booking collection as one JSON document in Redis.
// Callers serialize mutations, so writes reach Redis in logical mutation
// order.
type BookingStore struct {
	Client *redis.Client
}

func (s BookingStore) client() *redis.Client {
	if s.Client != nil {
		return s.Client
	}
	return intconfig.Redis
}

// Save overwrites the stored collection with the given snapshot.
func (s BookingStore) Save(ctx context.Context, bookings []domain.Booking) error {
	data, err := json.Marshal(bookings)
	if err != nil {
		return fmt.Errorf("marshal bookings: %w", err)
	}
	if err := s.client().Set(ctx, BookingsKey, string(data), 0).Err(); err != nil {
		return fmt.Errorf("persist bookings: %w", err)
	}
	return nil
}

// Load returns the stored collection. A missing key or an undecodable payload
// yields an empty slice, never an error; losing stale local data beats
// crashing at startup.
func (s BookingStore) Load(ctx context.Context) []domain.Booking {
	data, err := s.client().Get(ctx, BookingsKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("[LEDGER] action=load msg=read failed, starting empty: %v", err)
		}
		return []domain.Booking{}
	}

	var bookings []domain.Booking
	if err := json.Unmarshal(data, &bookings); err != nil {
		log.Printf("[LEDGER] action=load msg=corrupt payload, starting empty: %v", err)
		return []domain.Booking{}
	}
	if bookings == nil {
		bookings = []domain.Booking{}
	}
	return bookings
}
