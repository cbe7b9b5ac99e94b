package services

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"supreme_fitness_backend/internal/models"
	"supreme_fitness_backend/internal/repositories"
)

// --- Custom Service Errors for Classes ---
var (
	ErrClassNotFound   = errors.New("class not found")
	ErrTrainerNotFound = errors.New("trainer not found")
	ErrClassValidation = errors.New("class data validation error")
)

// --- Class DTOs ---
type CreateClassRequest struct {
	TrainerID   string    `json:"trainer_id" binding:"required"`
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description"`
	StartTime   time.Time `json:"start_time" binding:"required"`
	EndTime     time.Time `json:"end_time" binding:"required"`
	Capacity    int       `json:"capacity" binding:"required"`
	Price       float64   `json:"price"`
}

// --- ClassService Interface ---
type ClassService interface {
	CreateClass(req CreateClassRequest) (*models.GymClass, error)
	ListActiveClasses() ([]models.GymClass, error)
	ListClassesByTrainer(trainerID string) ([]models.GymClass, error)
}

// --- classService Implementation ---
type classService struct {
	classRepo repositories.ClassRepository
	userRepo  repositories.UserRepository
	db        *sql.DB
}

// NewClassService creates a new instance of ClassService.
func NewClassService(cr repositories.ClassRepository, ur repositories.UserRepository, db *sql.DB) ClassService {
	return &classService{
		classRepo: cr,
		userRepo:  ur,
		db:        db,
	}
}

// CreateClass publishes a class. The trainer id is resolved to a display
// name; capacity, price and the time window are validated up front.
func (s *classService) CreateClass(req CreateClassRequest) (*models.GymClass, error) {
	if req.Capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive", ErrClassValidation)
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrClassValidation)
	}
	if !req.EndTime.After(req.StartTime) {
		return nil, fmt.Errorf("%w: end time must be after start time", ErrClassValidation)
	}

	trainer, err := s.userRepo.FindUserByID(req.TrainerID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: id %s", ErrTrainerNotFound, req.TrainerID)
		}
		return nil, fmt.Errorf("failed to resolve trainer: %w", err)
	}

	class := &models.GymClass{
		ID:              uuid.NewString(),
		TrainerID:       trainer.ID,
		TrainerName:     trainer.FullName,
		Name:            req.Name,
		Description:     req.Description,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		DurationMinutes: int(req.EndTime.Sub(req.StartTime).Minutes()),
		Capacity:        req.Capacity,
		Price:           req.Price,
		Status:          models.ClassStatusActive,
		EnrolledCount:   0,
	}

	if err := s.classRepo.CreateClass(s.db, class); err != nil {
		return nil, fmt.Errorf("failed to create class: %w", err)
	}
	return class, nil
}

func (s *classService) ListActiveClasses() ([]models.GymClass, error) {
	classes, err := s.classRepo.ListActiveClasses()
	if err != nil {
		return nil, fmt.Errorf("failed to list classes: %w", err)
	}
	return classes, nil
}

func (s *classService) ListClassesByTrainer(trainerID string) ([]models.GymClass, error) {
	classes, err := s.classRepo.ListClassesByTrainer(trainerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list trainer classes: %w", err)
	}
	return classes, nil
}
