package domain

import "time"

// Contact identifies who made a booking. Both fields are required after trim.
type Contact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Booking is one mock reservation. Destination is a snapshot copy taken at
// booking time; later catalog or search changes never touch it.
type Booking struct {
	ID          string      `json:"id"`
	Destination Destination `json:"destination"`
	Contact     Contact     `json:"contact"`
	CreatedAt   time.Time   `json:"createdAt"`
}
