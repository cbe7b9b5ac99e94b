package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"supreme_fitness_backend/internal/models"
)

// FeedbackRepository defines the interface for feedback database operations.
type FeedbackRepository interface {
	CreateFeedback(feedback *models.Feedback) error
	ListFeedbackByTrainer(trainerID string) ([]models.Feedback, error)
}

type feedbackRepository struct {
	db *sql.DB
}

// NewFeedbackRepository creates a new instance of FeedbackRepository.
func NewFeedbackRepository(db *sql.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) CreateFeedback(feedback *models.Feedback) error {
	query := `INSERT INTO feedback
	            (id, member_id, member_name, trainer_id, class_id, rating, comment, feedback_type, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	feedback.CreatedAt = time.Now()

	_, err := r.db.Exec(query,
		feedback.ID, feedback.MemberID, feedback.MemberName,
		feedback.TrainerID, feedback.ClassID, feedback.Rating,
		feedback.Comment, feedback.FeedbackType, feedback.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: creating feedback: %v", ErrDatabaseError, err)
	}
	return nil
}

func (r *feedbackRepository) ListFeedbackByTrainer(trainerID string) ([]models.Feedback, error) {
	query := `SELECT id, member_id, member_name, trainer_id, class_id, rating, comment, feedback_type, created_at
	          FROM feedback WHERE trainer_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(query, trainerID)
	if err != nil {
		return nil, fmt.Errorf("%w: querying feedback for trainer %s: %v", ErrDatabaseError, trainerID, err)
	}
	defer rows.Close()

	records := []models.Feedback{}
	for rows.Next() {
		feedback := models.Feedback{}
		var trainerRef, classRef sql.NullString

		err := rows.Scan(&feedback.ID, &feedback.MemberID, &feedback.MemberName,
			&trainerRef, &classRef, &feedback.Rating, &feedback.Comment,
			&feedback.FeedbackType, &feedback.CreatedAt)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, ErrNotFound
			}
			return nil, fmt.Errorf("%w: scanning feedback: %v", ErrDatabaseError, err)
		}

		if trainerRef.Valid {
			feedback.TrainerID = &trainerRef.String
		}
		if classRef.Valid {
			feedback.ClassID = &classRef.String
		}
		records = append(records, feedback)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating feedback rows: %v", ErrDatabaseError, err)
	}
	return records, nil
}
