package models

import (
	"math"
	"time"
)

// Progress is one append-only body-metric snapshot for a member. BMI is
// derived at creation when both weight and height are present;
// AttendanceCount snapshots the member's attended bookings at that moment.
type Progress struct {
	ID              string    `json:"id"`
	MemberID        string    `json:"member_id"`
	Weight          *float64  `json:"weight,omitempty"`
	Height          *float64  `json:"height,omitempty"` // centimeters
	BMI             *float64  `json:"bmi,omitempty"`
	AttendanceCount int       `json:"attendance_count"`
	RecordedAt      time.Time `json:"recorded_date"`
}

// CalculateBMI computes weight (kg) over height (cm) squared in meters,
// rounded to 2 decimals.
func CalculateBMI(weight, height float64) float64 {
	heightM := height / 100
	return math.Round(weight/(heightM*heightM)*100) / 100
}
