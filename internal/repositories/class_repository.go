package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"supreme_fitness_backend/internal/models"
)

// ClassRepository defines the interface for gym class database operations.
// The enrollment counter methods take an SQLExecutor so the booking workflow
// can run them inside its transaction.
type ClassRepository interface {
	CreateClass(executor SQLExecutor, class *models.GymClass) error
	GetClassByID(classID string) (*models.GymClass, error)
	ListActiveClasses() ([]models.GymClass, error)
	ListClassesByTrainer(trainerID string) ([]models.GymClass, error)
	IncrementEnrollment(executor SQLExecutor, classID string) error
	DecrementEnrollment(executor SQLExecutor, classID string) error
}

type classRepository struct {
	db *sql.DB
}

// NewClassRepository creates a new instance of ClassRepository.
func NewClassRepository(db *sql.DB) ClassRepository {
	return &classRepository{db: db}
}

const selectClassFields = `
	id, trainer_id, trainer_name, name, description, start_time, end_time,
	duration_minutes, capacity, price, status, enrolled_count, created_at, updated_at
`

func scanClass(row scanner) (*models.GymClass, error) {
	class := &models.GymClass{}
	err := row.Scan(
		&class.ID, &class.TrainerID, &class.TrainerName, &class.Name, &class.Description,
		&class.StartTime, &class.EndTime, &class.DurationMinutes, &class.Capacity,
		&class.Price, &class.Status, &class.EnrolledCount, &class.CreatedAt, &class.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: scanning gym class: %v", ErrDatabaseError, err)
	}
	return class, nil
}

func (r *classRepository) CreateClass(executor SQLExecutor, class *models.GymClass) error {
	query := `INSERT INTO gym_classes
	            (id, trainer_id, trainer_name, name, description, start_time, end_time,
	             duration_minutes, capacity, price, status, enrolled_count, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	currentTime := time.Now()
	class.CreatedAt = currentTime
	class.UpdatedAt = currentTime

	_, err := executor.Exec(query,
		class.ID, class.TrainerID, class.TrainerName, class.Name, class.Description,
		class.StartTime, class.EndTime, class.DurationMinutes, class.Capacity,
		class.Price, class.Status, class.EnrolledCount, class.CreatedAt, class.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: creating gym class: %v", ErrDatabaseError, err)
	}
	return nil
}

func (r *classRepository) GetClassByID(classID string) (*models.GymClass, error) {
	query := "SELECT " + selectClassFields + " FROM gym_classes WHERE id = $1"
	return scanClass(r.db.QueryRow(query, classID))
}

func (r *classRepository) ListActiveClasses() ([]models.GymClass, error) {
	query := "SELECT " + selectClassFields + " FROM gym_classes WHERE status = $1 ORDER BY start_time"
	return r.queryClasses(query, models.ClassStatusActive)
}

func (r *classRepository) ListClassesByTrainer(trainerID string) ([]models.GymClass, error) {
	query := "SELECT " + selectClassFields + " FROM gym_classes WHERE trainer_id = $1 ORDER BY start_time"
	return r.queryClasses(query, trainerID)
}

func (r *classRepository) queryClasses(query string, args ...interface{}) ([]models.GymClass, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: querying gym classes: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	classes := []models.GymClass{}
	for rows.Next() {
		class, scanErr := scanClass(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		classes = append(classes, *class)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating gym class rows: %v", ErrDatabaseError, err)
	}
	return classes, nil
}

// IncrementEnrollment bumps enrolled_count by one, but only while the class
// is active and below capacity. The conditional update is the serialization
// point for concurrent reservations: with zero rows matched the seat was not
// granted and ErrCapacityReached is returned.
func (r *classRepository) IncrementEnrollment(executor SQLExecutor, classID string) error {
	query := `UPDATE gym_classes
	          SET enrolled_count = enrolled_count + 1, updated_at = $1
	          WHERE id = $2 AND status = $3 AND enrolled_count < capacity`

	result, err := executor.Exec(query, time.Now(), classID, models.ClassStatusActive)
	if err != nil {
		return fmt.Errorf("%w: incrementing enrollment for class %s: %v", ErrDatabaseError, classID, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrCapacityReached
	}
	return nil
}

// DecrementEnrollment lowers enrolled_count by one, flooring at zero.
func (r *classRepository) DecrementEnrollment(executor SQLExecutor, classID string) error {
	query := `UPDATE gym_classes
	          SET enrolled_count = GREATEST(enrolled_count - 1, 0), updated_at = $1
	          WHERE id = $2`

	result, err := executor.Exec(query, time.Now(), classID)
	if err != nil {
		return fmt.Errorf("%w: decrementing enrollment for class %s: %v", ErrDatabaseError, classID, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
