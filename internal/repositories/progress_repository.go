package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"supreme_fitness_backend/internal/models"
)

// ProgressRepository defines the interface for progress history operations.
// Entries are append-only; there is no update path.
type ProgressRepository interface {
	CreateEntry(entry *models.Progress) error
	ListEntriesByMember(memberID string) ([]models.Progress, error)
}

type progressRepository struct {
	db *sql.DB
}

// NewProgressRepository creates a new instance of ProgressRepository.
func NewProgressRepository(db *sql.DB) ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) CreateEntry(entry *models.Progress) error {
	query := `INSERT INTO progress
	            (id, member_id, weight, height, bmi, attendance_count, recorded_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`

	entry.RecordedAt = time.Now()

	_, err := r.db.Exec(query,
		entry.ID, entry.MemberID, entry.Weight, entry.Height,
		entry.BMI, entry.AttendanceCount, entry.RecordedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: creating progress entry: %v", ErrDatabaseError, err)
	}
	return nil
}

func (r *progressRepository) ListEntriesByMember(memberID string) ([]models.Progress, error) {
	query := `SELECT id, member_id, weight, height, bmi, attendance_count, recorded_at
	          FROM progress WHERE member_id = $1 ORDER BY recorded_at DESC`

	rows, err := r.db.Query(query, memberID)
	if err != nil {
		return nil, fmt.Errorf("%w: querying progress for member %s: %v", ErrDatabaseError, memberID, err)
	}
	defer rows.Close()

	entries := []models.Progress{}
	for rows.Next() {
		entry := models.Progress{}
		var weight, height, bmi sql.NullFloat64

		err := rows.Scan(&entry.ID, &entry.MemberID, &weight, &height, &bmi,
			&entry.AttendanceCount, &entry.RecordedAt)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, ErrNotFound
			}
			return nil, fmt.Errorf("%w: scanning progress entry: %v", ErrDatabaseError, err)
		}

		if weight.Valid {
			entry.Weight = &weight.Float64
		}
		if height.Valid {
			entry.Height = &height.Float64
		}
		if bmi.Valid {
			entry.BMI = &bmi.Float64
		}
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating progress rows: %v", ErrDatabaseError, err)
	}
	return entries, nil
}
