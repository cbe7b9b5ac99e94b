package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq" // For pq.Error

	"supreme_fitness_backend/internal/models"
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	CreateUser(executor SQLExecutor, user *models.User) error
	FindUserByEmail(email string) (*models.User, error)
	FindUserByID(userID string) (*models.User, error)
	ListUsers() ([]models.User, error)
	ListUserIDsByRole(role string) ([]string, error)
	SetApproved(userID string, approved bool) error
	SetActive(userID string, active bool) error
}

type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

const selectUserFields = `
	id, email, password_hash, full_name, role, phone, is_active, is_approved,
	date_joined, created_at, updated_at
`

func scanUser(row scanner) (*models.User, error) {
	user := &models.User{}
	var phone sql.NullString

	err := row.Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.FullName, &user.Role,
		&phone, &user.IsActive, &user.IsApproved,
		&user.DateJoined, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: scanning user: %v", ErrDatabaseError, err)
	}

	if phone.Valid {
		user.Phone = &phone.String
	}
	return user, nil
}

// CreateUser inserts a new user. It expects an SQLExecutor which can be a
// *sql.DB or *sql.Tx. A unique-constraint violation on email surfaces as
// ErrDuplicateKey.
func (r *userRepository) CreateUser(executor SQLExecutor, user *models.User) error {
	query := `INSERT INTO users
	            (id, email, password_hash, full_name, role, phone, is_active, is_approved, date_joined, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	currentTime := time.Now()
	user.DateJoined = currentTime
	user.CreatedAt = currentTime
	user.UpdatedAt = currentTime

	_, err := executor.Exec(query,
		user.ID, user.Email, user.PasswordHash, user.FullName, user.Role,
		user.Phone, user.IsActive, user.IsApproved,
		user.DateJoined, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return fmt.Errorf("%w: %s (constraint: %s)", ErrDuplicateKey, pqErr.Message, pqErr.Constraint)
		}
		return fmt.Errorf("%w: creating user: %v", ErrDatabaseError, err)
	}
	return nil
}

// FindUserByEmail retrieves a user by email, including the password hash for
// credential checks.
func (r *userRepository) FindUserByEmail(email string) (*models.User, error) {
	query := "SELECT " + selectUserFields + " FROM users WHERE email = $1"
	user, err := scanUser(r.db.QueryRow(query, email))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("finding user by email: %w", err)
	}
	return user, nil
}

// FindUserByID retrieves a user by their ID.
func (r *userRepository) FindUserByID(userID string) (*models.User, error) {
	query := "SELECT " + selectUserFields + " FROM users WHERE id = $1"
	user, err := scanUser(r.db.QueryRow(query, userID))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("finding user by ID %s: %w", userID, err)
	}
	return user, nil
}

// ListUsers returns every user, newest registration first.
func (r *userRepository) ListUsers() ([]models.User, error) {
	query := "SELECT " + selectUserFields + " FROM users ORDER BY date_joined DESC"
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying users: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		user, scanErr := scanUser(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		users = append(users, *user)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating user rows: %v", ErrDatabaseError, err)
	}
	return users, nil
}

// ListUserIDsByRole returns the ids of all users with the given role.
func (r *userRepository) ListUserIDsByRole(role string) ([]string, error) {
	rows, err := r.db.Query(`SELECT id FROM users WHERE role = $1`, role)
	if err != nil {
		return nil, fmt.Errorf("%w: querying users by role: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: scanning user id: %v", ErrDatabaseError, err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating user id rows: %v", ErrDatabaseError, err)
	}
	return ids, nil
}

// SetApproved flips the approval flag for a user.
func (r *userRepository) SetApproved(userID string, approved bool) error {
	return r.setFlag(`UPDATE users SET is_approved = $1, updated_at = $2 WHERE id = $3`, approved, userID)
}

// SetActive flips the active flag for a user.
func (r *userRepository) SetActive(userID string, active bool) error {
	return r.setFlag(`UPDATE users SET is_active = $1, updated_at = $2 WHERE id = $3`, active, userID)
}

func (r *userRepository) setFlag(query string, value bool, userID string) error {
	result, err := r.db.Exec(query, value, time.Now(), userID)
	if err != nil {
		return fmt.Errorf("%w: updating user %s: %v", ErrDatabaseError, userID, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
