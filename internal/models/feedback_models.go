package models

import "time"

// Feedback types.
const (
	FeedbackTypeTrainer = "trainer"
	FeedbackTypeClass   = "class"
)

// Feedback is an immutable rating/comment a member leaves against a trainer
// or a class. Exactly one of TrainerID/ClassID is set, matching FeedbackType.
type Feedback struct {
	ID           string    `json:"id"`
	MemberID     string    `json:"member_id"`
	MemberName   string    `json:"member_name"`
	TrainerID    *string   `json:"trainer_id,omitempty"`
	ClassID      *string   `json:"class_id,omitempty"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	FeedbackType string    `json:"feedback_type"`
	CreatedAt    time.Time `json:"created_at"`
}
