package models

import "time"

// Booking statuses. Cancelled, attended and no_show are terminal.
const (
	BookingStatusBooked    = "booked"
	BookingStatusCancelled = "cancelled"
	BookingStatusAttended  = "attended"
	BookingStatusNoShow    = "no_show"
)

// Payment statuses, shared by payments and the booking's payment_status.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
	PaymentStatusRefunded  = "refunded"
)

// IsTerminalBookingStatus reports whether a booking can transition no further.
func IsTerminalBookingStatus(status string) bool {
	switch status {
	case BookingStatusCancelled, BookingStatusAttended, BookingStatusNoShow:
		return true
	default:
		return false
	}
}

// IsValidAttendanceStatus checks the statuses a trainer may record for a
// booked member.
func IsValidAttendanceStatus(status string) bool {
	return status == BookingStatusAttended || status == BookingStatusNoShow
}

// Booking represents a member's seat in a class. Class name and start time
// are denormalized at creation for display.
type Booking struct {
	ID             string    `json:"id"`
	MemberID       string    `json:"member_id"`
	MemberName     string    `json:"member_name"`
	ClassID        string    `json:"class_id"`
	ClassName      string    `json:"class_name"`
	ClassStartTime time.Time `json:"class_start_time"`
	BookingTime    time.Time `json:"booking_time"`
	Status         string    `json:"status"`
	PaymentStatus  string    `json:"payment_status"`
	PaymentID      *string   `json:"payment_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
