package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"supreme_fitness_backend/internal/models"
	"supreme_fitness_backend/internal/repositories"
)

var (
	ErrFeedbackValidation = errors.New("feedback data validation error")
)

// --- Feedback DTOs ---
type CreateFeedbackRequest struct {
	TrainerID    *string `json:"trainer_id,omitempty"`
	ClassID      *string `json:"class_id,omitempty"`
	Rating       int     `json:"rating" binding:"required"`
	Comment      string  `json:"comment"`
	FeedbackType string  `json:"feedback_type" binding:"required"`
}

// --- FeedbackService Interface ---
type FeedbackService interface {
	CreateFeedback(principal models.Principal, req CreateFeedbackRequest) (*models.Feedback, error)
	ListForTrainer(trainerID string) ([]models.Feedback, error)
}

// --- feedbackService Implementation ---
type feedbackService struct {
	feedbackRepo repositories.FeedbackRepository
	notifier     NotificationService
}

// NewFeedbackService creates a new instance of FeedbackService.
func NewFeedbackService(fr repositories.FeedbackRepository, ns NotificationService) FeedbackService {
	return &feedbackService{
		feedbackRepo: fr,
		notifier:     ns,
	}
}

// CreateFeedback stores an immutable rating. The rating must be 1-5 and the
// target must match the feedback type: a trainer id for trainer feedback, a
// class id for class feedback, never both.
func (s *feedbackService) CreateFeedback(principal models.Principal, req CreateFeedbackRequest) (*models.Feedback, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrFeedbackValidation)
	}

	switch req.FeedbackType {
	case models.FeedbackTypeTrainer:
		if req.TrainerID == nil || req.ClassID != nil {
			return nil, fmt.Errorf("%w: trainer feedback requires trainer_id only", ErrFeedbackValidation)
		}
	case models.FeedbackTypeClass:
		if req.ClassID == nil || req.TrainerID != nil {
			return nil, fmt.Errorf("%w: class feedback requires class_id only", ErrFeedbackValidation)
		}
	default:
		return nil, fmt.Errorf("%w: unknown feedback type '%s'", ErrFeedbackValidation, req.FeedbackType)
	}

	feedback := &models.Feedback{
		ID:           uuid.NewString(),
		MemberID:     principal.ID,
		MemberName:   principal.FullName,
		TrainerID:    req.TrainerID,
		ClassID:      req.ClassID,
		Rating:       req.Rating,
		Comment:      req.Comment,
		FeedbackType: req.FeedbackType,
	}

	if err := s.feedbackRepo.CreateFeedback(feedback); err != nil {
		return nil, fmt.Errorf("failed to create feedback: %w", err)
	}

	if feedback.TrainerID != nil {
		s.notifier.Notify(*feedback.TrainerID,
			"New Feedback Received",
			fmt.Sprintf("You received a %d-star rating from %s", feedback.Rating, principal.FullName),
			models.NotificationTypeFeedback)
	}

	return feedback, nil
}

func (s *feedbackService) ListForTrainer(trainerID string) ([]models.Feedback, error) {
	records, err := s.feedbackRepo.ListFeedbackByTrainer(trainerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list trainer feedback: %w", err)
	}
	return records, nil
}
