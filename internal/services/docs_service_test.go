package services

import (
	"bytes"
	"testing"
	"time"

	"travelmap/internal/domain"
)

func TestDocsServiceGenerateItinerary(t *testing.T) {
	loader := func(id string) (domain.Booking, error) {
		return domain.Booking{
			ID: id,
			Destination: domain.Destination{
				ID:          "1",
				Name:        "Paris, France",
				Coordinates: domain.Coordinates{Lat: 48.8566, Lon: 2.3522},
				Summary:     "Museums, cafés and the Seine.",
			},
			Contact:   domain.Contact{Name: "Ada", Email: "ada@example.com"},
			CreatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		}, nil
	}

	svc := DocsService{Loader: loader}

	pdf, filename, err := svc.GenerateItinerary("100-abcd1234")
	if err != nil {
		t.Fatalf("GenerateItinerary returned error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("GenerateItinerary returned empty data")
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("output does not look like a PDF")
	}
	if filename != "ITINERARY_Paris__France.pdf" {
		t.Fatalf("unexpected filename %q", filename)
	}
}

func TestDocsServiceUnknownBooking(t *testing.T) {
	ledger := &BookingService{}
	svc := DocsService{Ledger: ledger}

	_, _, err := svc.GenerateItinerary("missing")
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}
