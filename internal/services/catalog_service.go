package services

import (
	"strings"

	"travelmap/internal/domain"
	"travelmap/internal/repositories"
)

// CatalogService holds the curated destination list in memory. It is loaded
// once at startup and read-only afterwards.
type CatalogService struct {
	Repo repositories.DestinationRepository

	destinations []domain.Destination
}

// DefaultSeed is the built-in curated list used when the destinations table
// is empty.
func DefaultSeed() []domain.Destination {
	return []domain.Destination{
		{Name: "Paris, France", Coordinates: domain.Coordinates{Lat: 48.8566, Lon: 2.3522}, Summary: "Museums, cafés and the Seine."},
		{Name: "Tokyo, Japan", Coordinates: domain.Coordinates{Lat: 35.6895, Lon: 139.6917}, Summary: "Neon nights and quiet shrines."},
		{Name: "New York, USA", Coordinates: domain.Coordinates{Lat: 40.7128, Lon: -74.006}, Summary: "The city that never sleeps."},
		{Name: "Sydney, Australia", Coordinates: domain.Coordinates{Lat: -33.8688, Lon: 151.2093}, Summary: "Harbour views and beach days."},
		{Name: "Bangkok, Thailand", Coordinates: domain.Coordinates{Lat: 13.7563, Lon: 100.5018}, Summary: "Street food and golden temples."},
		{Name: "Rio de Janeiro, Brazil", Coordinates: domain.Coordinates{Lat: -22.9068, Lon: -43.1729}, Summary: "Carnival, samba and Sugarloaf."},
		{Name: "Cape Town, South Africa", Coordinates: domain.Coordinates{Lat: -33.9249, Lon: 18.4241}, Summary: "Table Mountain at the tip of Africa."},
		{Name: "Reykjavik, Iceland", Coordinates: domain.Coordinates{Lat: 64.1466, Lon: -21.9426}, Summary: "Northern lights and hot springs."},
	}
}

// Load ensures the schema, seeds an empty table and pulls all rows into
// memory. Call once before serving.
func (s *CatalogService) Load() error {
	if err := s.Repo.EnsureSchema(); err != nil {
		return err
	}
	if err := s.Repo.Seed(DefaultSeed()); err != nil {
		return err
	}
	dests, err := s.Repo.LoadAll()
	if err != nil {
		return err
	}
	s.destinations = dests
	return nil
}

// All returns the full catalog in original order.
func (s *CatalogService) All() []domain.Destination {
	out := make([]domain.Destination, len(s.destinations))
	copy(out, s.destinations)
	return out
}

// Match returns catalog entries whose name contains the query,
// case-insensitively.
func (s *CatalogService) Match(query string) []domain.Destination {
	q := strings.ToLower(strings.TrimSpace(query))
	out := []domain.Destination{}
	for _, d := range s.destinations {
		if strings.Contains(strings.ToLower(d.Name), q) {
			out = append(out, d)
		}
	}
	return out
}
