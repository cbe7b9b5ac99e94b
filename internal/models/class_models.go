package models

import "time"

// Class statuses.
const (
	ClassStatusActive    = "active"
	ClassStatusCancelled = "cancelled"
	ClassStatusCompleted = "completed"
)

// GymClass represents a scheduled class published by a trainer.
// EnrolledCount is mutated only by the booking workflow and never exceeds
// Capacity.
type GymClass struct {
	ID              string    `json:"id"`
	TrainerID       string    `json:"trainer_id"`
	TrainerName     string    `json:"trainer_name"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	DurationMinutes int       `json:"duration"`
	Capacity        int       `json:"capacity"`
	Price           float64   `json:"price"`
	Status          string    `json:"status"`
	EnrolledCount   int       `json:"enrolled_count"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
