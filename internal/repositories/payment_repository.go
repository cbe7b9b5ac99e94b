package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"supreme_fitness_backend/internal/models"
)

// PaymentRepository defines the interface for payment database operations.
type PaymentRepository interface {
	CreatePayment(executor SQLExecutor, payment *models.Payment) error
	GetPaymentByID(paymentID string) (*models.Payment, error)
	CompletePayment(executor SQLExecutor, paymentID, externalOrderID string, completedAt time.Time) (bool, error)
}

type paymentRepository struct {
	db *sql.DB
}

// NewPaymentRepository creates a new instance of PaymentRepository.
func NewPaymentRepository(db *sql.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

const selectPaymentFields = `
	id, user_id, booking_id, amount, payment_type, external_order_id,
	status, completed_at, created_at, updated_at
`

func scanPayment(row scanner) (*models.Payment, error) {
	payment := &models.Payment{}
	var bookingID, externalOrderID sql.NullString
	var completedAt sql.NullTime

	err := row.Scan(
		&payment.ID, &payment.UserID, &bookingID, &payment.Amount,
		&payment.PaymentType, &externalOrderID, &payment.Status,
		&completedAt, &payment.CreatedAt, &payment.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: scanning payment: %v", ErrDatabaseError, err)
	}

	if bookingID.Valid {
		payment.BookingID = &bookingID.String
	}
	if externalOrderID.Valid {
		payment.ExternalOrderID = &externalOrderID.String
	}
	if completedAt.Valid {
		payment.CompletedAt = &completedAt.Time
	}
	return payment, nil
}

func (r *paymentRepository) CreatePayment(executor SQLExecutor, payment *models.Payment) error {
	query := `INSERT INTO payments
	            (id, user_id, booking_id, amount, payment_type, external_order_id,
	             status, completed_at, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	currentTime := time.Now()
	payment.CreatedAt = currentTime
	payment.UpdatedAt = currentTime

	_, err := executor.Exec(query,
		payment.ID, payment.UserID, payment.BookingID, payment.Amount,
		payment.PaymentType, payment.ExternalOrderID, payment.Status,
		payment.CompletedAt, payment.CreatedAt, payment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: creating payment: %v", ErrDatabaseError, err)
	}
	return nil
}

func (r *paymentRepository) GetPaymentByID(paymentID string) (*models.Payment, error) {
	query := "SELECT " + selectPaymentFields + " FROM payments WHERE id = $1"
	return scanPayment(r.db.QueryRow(query, paymentID))
}

// CompletePayment marks a pending payment completed, recording the external
// order id and completion time. The status guard in the WHERE clause keeps
// terminal payments immutable; a false result means the payment was not
// pending.
func (r *paymentRepository) CompletePayment(executor SQLExecutor, paymentID, externalOrderID string, completedAt time.Time) (bool, error) {
	query := `UPDATE payments
	          SET status = $1, external_order_id = $2, completed_at = $3, updated_at = $4
	          WHERE id = $5 AND status = $6`

	result, err := executor.Exec(query,
		models.PaymentStatusCompleted, externalOrderID, completedAt, time.Now(),
		paymentID, models.PaymentStatusPending,
	)
	if err != nil {
		return false, fmt.Errorf("%w: completing payment %s: %v", ErrDatabaseError, paymentID, err)
	}
	rowsAffected, _ := result.RowsAffected()
	return rowsAffected > 0, nil
}
