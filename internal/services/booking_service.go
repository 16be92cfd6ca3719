package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"travelmap/internal/domain"
	"travelmap/internal/repositories"
	"travelmap/internal/utils"
)

// BookingService is the ledger: an in-memory, most-recent-first booking list
// persisted to the key-value store on every mutation. Mutation and persist run
// under one lock, so a later mutation's snapshot can never be overtaken by an
// earlier delayed write.
type BookingService struct {
	Store repositories.BookingStore

	mu       sync.Mutex
	bookings []domain.Booking
}

// Load rehydrates the ledger from storage. Missing or corrupt data starts an
// empty ledger.
func (s *BookingService) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings = s.Store.Load(ctx)
	utils.LogEvent(utils.RequestIDFromContext(ctx), "ledger", "load", fmt.Sprintf("restored %d bookings", len(s.bookings)))
}

// List returns the bookings, most recent first.
func (s *BookingService) List() []domain.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}

// Get returns one booking by id.
func (s *BookingService) Get(id string) (domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return domain.Booking{}, domain.NotFoundError{Resource: "booking"}
}

// Create validates the contact, snapshots the destination and prepends a new
// booking. Booking the same destination twice with the same email is a
// conflict. The collection is persisted before Create returns.
func (s *BookingService) Create(ctx context.Context, dest domain.Destination, contact domain.Contact) (domain.Booking, error) {
	name := utils.TrimOrEmpty(contact.Name)
	email := utils.TrimOrEmpty(contact.Email)
	if name == "" {
		return domain.Booking{}, domain.ValidationError{Field: "name", Msg: "name is required"}
	}
	if email == "" {
		return domain.Booking{}, domain.ValidationError{Field: "email", Msg: "email is required"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.bookings {
		if b.Destination.ID == dest.ID && strings.EqualFold(b.Contact.Email, email) {
			return domain.Booking{}, domain.ConflictError{Resource: "booking", Msg: "destination already booked for this email"}
		}
	}

	now := time.Now()
	booking := domain.Booking{
		ID:          newBookingID(now),
		Destination: dest, // value copy; later catalog changes never touch it
		Contact:     domain.Contact{Name: name, Email: email},
		CreatedAt:   now,
	}

	s.bookings = append([]domain.Booking{booking}, s.bookings...)
	s.persistLocked(ctx)

	utils.LogEvent(utils.RequestIDFromContext(ctx), "ledger", "create", fmt.Sprintf("booking %s for %s", booking.ID, dest.Name))
	return booking, nil
}

// Cancel removes the booking with the given id. Confirmation is part of the
// contract, not optional; an unknown id is a silent no-op.
func (s *BookingService) Cancel(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return domain.ValidationError{Field: "confirm", Msg: "cancellation requires confirmation"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.bookings[:0:0]
	removed := false
	for _, b := range s.bookings {
		if b.ID == id {
			removed = true
			continue
		}
		kept = append(kept, b)
	}
	if !removed {
		return nil
	}

	s.bookings = kept
	s.persistLocked(ctx)
	utils.LogEvent(utils.RequestIDFromContext(ctx), "ledger", "cancel", "booking "+id)
	return nil
}

// persistLocked writes the current snapshot. A storage failure is logged and
// the write skipped; it never fails the mutation.
func (s *BookingService) persistLocked(ctx context.Context) {
	if err := s.Store.Save(ctx, s.bookings); err != nil {
		utils.LogEvent(utils.RequestIDFromContext(ctx), "ledger", "persist", "write skipped: "+err.Error())
	}
}

// newBookingID derives the id from the creation timestamp; a short random
// suffix breaks ties within the same nanosecond.
func newBookingID(t time.Time) string {
	return fmt.Sprintf("%d-%s", t.UnixNano(), uuid.NewString()[:8])
}
