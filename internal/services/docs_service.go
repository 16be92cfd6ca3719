package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"

	"travelmap/internal/domain"
	"travelmap/internal/utils"
)

// DocsService renders a PDF itinerary for a booking.
type DocsService struct {
	Ledger    *BookingService
	RequestID string
	Loader    func(id string) (domain.Booking, error)
}

func (s DocsService) GenerateItinerary(bookingID string) ([]byte, string, error) {
	booking, err := s.loadBooking(bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_itinerary", "booking_id="+bookingID)
	return buildItineraryPDF(booking)
}

func (s DocsService) loadBooking(id string) (domain.Booking, error) {
	if s.Loader != nil {
		return s.Loader(id)
	}
	return s.Ledger.Get(id)
}

func buildItineraryPDF(b domain.Booking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Itinerary", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "TRAVEL ITINERARY")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Traveller    : %s", safe(b.Contact.Name, "-")),
		fmt.Sprintf("Email        : %s", safe(b.Contact.Email, "-")),
		fmt.Sprintf("Destination  : %s", safe(b.Destination.Name, "-")),
		fmt.Sprintf("Coordinates  : %s", b.Destination.Coordinates),
		fmt.Sprintf("Booked at    : %s", b.CreatedAt.Format("2006-01-02 15:04")),
		fmt.Sprintf("Booking code : %s", safe(b.ID, "-")),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	if strings.TrimSpace(b.Destination.Summary) != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 6, b.Destination.Summary, "", "", false)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "This is a demo booking. No payment has been taken and no seat is held.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", domain.InternalError{Msg: "itinerary rendering failed", Err: err}
	}

	filename := fmt.Sprintf("ITINERARY_%s.pdf", safeFilenamePart(b.Destination.Name))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_", ",", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
