package domain

import "time"

// Booking is an active reservation. It stays in the active set for the whole
// stay window and is removed on cancellation; no history is retained.
type Booking struct {
	BookingID        string `json:"bookingId"`
	RoomType         string `json:"roomType"`
	Checkin          string `json:"checkin"`
	Checkout         string `json:"checkout"`
	CustomerEmail    string `json:"customerEmail"`
	CustomerPhone    string `json:"customerPhone"`
	BasePrice        int64  `json:"basePrice"`
	Tax              int64  `json:"tax"`
	TotalPrice       int64  `json:"totalPrice"`
	PaymentReference string `json:"paymentReference,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// RoomSummary is the admin view of one room type.
type RoomSummary struct {
	Total     int `json:"total"`
	Booked    int `json:"booked"`
	Available int `json:"available"`
}
