package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"supreme_fitness_backend/internal/models"
	"supreme_fitness_backend/internal/repositories"
)

var (
	ErrProgressValidation = errors.New("progress data validation error")
)

// --- Progress DTOs ---
type RecordProgressRequest struct {
	Weight *float64 `json:"weight,omitempty"`
	Height *float64 `json:"height,omitempty"`
}

// --- ProgressService Interface ---
type ProgressService interface {
	RecordEntry(principal models.Principal, req RecordProgressRequest) (*models.Progress, error)
	ListForMember(principal models.Principal) ([]models.Progress, error)
}

// --- progressService Implementation ---
type progressService struct {
	progressRepo repositories.ProgressRepository
	bookingRepo  repositories.BookingRepository
}

// NewProgressService creates a new instance of ProgressService.
func NewProgressService(pr repositories.ProgressRepository, br repositories.BookingRepository) ProgressService {
	return &progressService{
		progressRepo: pr,
		bookingRepo:  br,
	}
}

// RecordEntry appends a body-metric snapshot. BMI is derived only when both
// weight and height are present; the attendance count is snapshotted from
// the member's attended bookings at this moment.
func (s *progressService) RecordEntry(principal models.Principal, req RecordProgressRequest) (*models.Progress, error) {
	if req.Weight != nil && *req.Weight <= 0 {
		return nil, fmt.Errorf("%w: weight must be positive", ErrProgressValidation)
	}
	if req.Height != nil && *req.Height <= 0 {
		return nil, fmt.Errorf("%w: height must be positive", ErrProgressValidation)
	}

	var bmi *float64
	if req.Weight != nil && req.Height != nil {
		value := models.CalculateBMI(*req.Weight, *req.Height)
		bmi = &value
	}

	attended, err := s.bookingRepo.CountAttendedByMember(principal.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot attendance count: %w", err)
	}

	entry := &models.Progress{
		ID:              uuid.NewString(),
		MemberID:        principal.ID,
		Weight:          req.Weight,
		Height:          req.Height,
		BMI:             bmi,
		AttendanceCount: attended,
	}

	if err := s.progressRepo.CreateEntry(entry); err != nil {
		return nil, fmt.Errorf("failed to record progress entry: %w", err)
	}
	return entry, nil
}

func (s *progressService) ListForMember(principal models.Principal) ([]models.Progress, error) {
	entries, err := s.progressRepo.ListEntriesByMember(principal.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list progress history: %w", err)
	}
	return entries, nil
}
