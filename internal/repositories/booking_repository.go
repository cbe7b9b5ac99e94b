package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"supreme_fitness_backend/internal/models"
)

// BookingRepository defines the interface for booking database operations.
// Mutating methods take an SQLExecutor so the reserve/cancel workflows can
// run them inside a transaction together with the enrollment counter.
type BookingRepository interface {
	CreateBooking(executor SQLExecutor, booking *models.Booking) error
	GetBookingByID(bookingID string) (*models.Booking, error)
	ListBookingsByMember(memberID string) ([]models.Booking, error)
	HasActiveBooking(memberID, classID string) (bool, error)
	TransitionStatus(executor SQLExecutor, bookingID, fromStatus, toStatus string) (bool, error)
	SetPaymentStatus(executor SQLExecutor, bookingID, paymentStatus, paymentID string) error
	CountAttendedByMember(memberID string) (int, error)
}

type bookingRepository struct {
	db *sql.DB
}

// NewBookingRepository creates a new instance of BookingRepository.
func NewBookingRepository(db *sql.DB) BookingRepository {
	return &bookingRepository{db: db}
}

const selectBookingFields = `
	id, member_id, member_name, class_id, class_name, class_start_time,
	booking_time, status, payment_status, payment_id, created_at, updated_at
`

func scanBooking(row scanner) (*models.Booking, error) {
	booking := &models.Booking{}
	var paymentID sql.NullString

	err := row.Scan(
		&booking.ID, &booking.MemberID, &booking.MemberName,
		&booking.ClassID, &booking.ClassName, &booking.ClassStartTime,
		&booking.BookingTime, &booking.Status, &booking.PaymentStatus,
		&paymentID, &booking.CreatedAt, &booking.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: scanning booking: %v", ErrDatabaseError, err)
	}

	if paymentID.Valid {
		booking.PaymentID = &paymentID.String
	}
	return booking, nil
}

// CreateBooking inserts a booking row. The partial unique index on
// (member_id, class_id) WHERE status='booked' turns a concurrent duplicate
// into ErrDuplicateKey.
func (r *bookingRepository) CreateBooking(executor SQLExecutor, booking *models.Booking) error {
	query := `INSERT INTO bookings
	            (id, member_id, member_name, class_id, class_name, class_start_time,
	             booking_time, status, payment_status, payment_id, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	currentTime := time.Now()
	booking.BookingTime = currentTime
	booking.CreatedAt = currentTime
	booking.UpdatedAt = currentTime

	_, err := executor.Exec(query,
		booking.ID, booking.MemberID, booking.MemberName,
		booking.ClassID, booking.ClassName, booking.ClassStartTime,
		booking.BookingTime, booking.Status, booking.PaymentStatus,
		booking.PaymentID, booking.CreatedAt, booking.UpdatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return fmt.Errorf("%w: %s (constraint: %s)", ErrDuplicateKey, pqErr.Message, pqErr.Constraint)
		}
		return fmt.Errorf("%w: creating booking: %v", ErrDatabaseError, err)
	}
	return nil
}

func (r *bookingRepository) GetBookingByID(bookingID string) (*models.Booking, error) {
	query := "SELECT " + selectBookingFields + " FROM bookings WHERE id = $1"
	return scanBooking(r.db.QueryRow(query, bookingID))
}

func (r *bookingRepository) ListBookingsByMember(memberID string) ([]models.Booking, error) {
	query := "SELECT " + selectBookingFields + " FROM bookings WHERE member_id = $1 ORDER BY booking_time DESC"
	rows, err := r.db.Query(query, memberID)
	if err != nil {
		return nil, fmt.Errorf("%w: querying bookings for member %s: %v", ErrDatabaseError, memberID, err)
	}
	defer rows.Close()

	bookings := []models.Booking{}
	for rows.Next() {
		booking, scanErr := scanBooking(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		bookings = append(bookings, *booking)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating booking rows: %v", ErrDatabaseError, err)
	}
	return bookings, nil
}

// HasActiveBooking reports whether the member already holds a booked seat in
// the class.
func (r *bookingRepository) HasActiveBooking(memberID, classID string) (bool, error) {
	query := `SELECT COUNT(*) FROM bookings
	          WHERE member_id = $1 AND class_id = $2 AND status = $3`

	var count int
	err := r.db.QueryRow(query, memberID, classID, models.BookingStatusBooked).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("%w: checking active booking: %v", ErrDatabaseError, err)
	}
	return count > 0, nil
}

// TransitionStatus moves a booking from one status to another, returning
// whether the row actually flipped. A false result with no error means the
// booking was not in fromStatus, which callers use to keep repeat
// cancellation a no-op.
func (r *bookingRepository) TransitionStatus(executor SQLExecutor, bookingID, fromStatus, toStatus string) (bool, error) {
	query := `UPDATE bookings SET status = $1, updated_at = $2
	          WHERE id = $3 AND status = $4`

	result, err := executor.Exec(query, toStatus, time.Now(), bookingID, fromStatus)
	if err != nil {
		return false, fmt.Errorf("%w: transitioning booking %s to %s: %v", ErrDatabaseError, bookingID, toStatus, err)
	}
	rowsAffected, _ := result.RowsAffected()
	return rowsAffected > 0, nil
}

// SetPaymentStatus records a payment outcome against a booking.
func (r *bookingRepository) SetPaymentStatus(executor SQLExecutor, bookingID, paymentStatus, paymentID string) error {
	query := `UPDATE bookings SET payment_status = $1, payment_id = $2, updated_at = $3
	          WHERE id = $4`

	result, err := executor.Exec(query, paymentStatus, paymentID, time.Now(), bookingID)
	if err != nil {
		return fmt.Errorf("%w: updating payment status for booking %s: %v", ErrDatabaseError, bookingID, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// CountAttendedByMember returns how many classes a member has attended.
func (r *bookingRepository) CountAttendedByMember(memberID string) (int, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE member_id = $1 AND status = $2`

	var count int
	err := r.db.QueryRow(query, memberID, models.BookingStatusAttended).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%w: counting attended bookings: %v", ErrDatabaseError, err)
	}
	return count, nil
}
