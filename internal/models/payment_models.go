package models

import "time"

// Payment types.
const (
	PaymentTypeClassBooking = "class_booking"
	PaymentTypeMembership   = "membership"
)

// Payment records a payment intent and its completion state. Amount is fixed
// at creation from the class price; completed/failed are set once and the
// record is immutable afterwards. No external payment authority is consulted.
type Payment struct {
	ID              string     `json:"id"`
	UserID          string     `json:"user_id"`
	BookingID       *string    `json:"booking_id,omitempty"`
	Amount          float64    `json:"amount"`
	PaymentType     string     `json:"payment_type"`
	ExternalOrderID *string    `json:"external_order_id,omitempty"`
	Status          string     `json:"status"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
