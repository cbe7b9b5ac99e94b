package models

import "time"

// Notification types.
const (
	NotificationTypeBooking      = "booking"
	NotificationTypeRegistration = "registration"
	NotificationTypeApproval     = "approval"
	NotificationTypePayment      = "payment"
	NotificationTypeFeedback     = "feedback"
	NotificationTypeGeneral      = "general"
)

// Notification is an in-app message row. Persistence is the only delivery
// guarantee; writers treat the append as best-effort.
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}
