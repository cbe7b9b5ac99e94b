package services

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"supreme_fitness_backend/internal/models"
	"supreme_fitness_backend/internal/repositories"
	"supreme_fitness_backend/pkg/utils"
)

// --- Custom Service Errors for Bookings ---
var (
	ErrBookingNotFound    = errors.New("booking not found")
	ErrBookingForbidden   = errors.New("caller may not act on this booking")
	ErrClassNotActive     = errors.New("class is not open for booking")
	ErrCapacityExceeded   = errors.New("class is full")
	ErrDuplicateBooking   = errors.New("already booked for this class")
	ErrBookingAlreadyOver = errors.New("booking is in a terminal state")
	ErrBadAttendance      = errors.New("attendance status must be attended or no_show")
)

// --- BookingService Interface ---
type BookingService interface {
	Reserve(principal models.Principal, classID string) (*models.Booking, error)
	Cancel(principal models.Principal, bookingID string) (*models.Booking, error)
	ListForMember(principal models.Principal) ([]models.Booking, error)
	MarkAttendance(bookingID, status string) (*models.Booking, error)
}

// --- bookingService Implementation ---
type bookingService struct {
	bookingRepo repositories.BookingRepository
	classRepo   repositories.ClassRepository
	notifier    NotificationService
	db          *sql.DB
}

// NewBookingService creates a new instance of BookingService.
func NewBookingService(
	br repositories.BookingRepository,
	cr repositories.ClassRepository,
	ns NotificationService,
	db *sql.DB,
) BookingService {
	return &bookingService{
		bookingRepo: br,
		classRepo:   cr,
		notifier:    ns,
		db:          db,
	}
}

// Reserve books a seat for the member. The booking insert and the enrollment
// increment run in one transaction; the increment is conditional on
// enrolled_count < capacity, so of two concurrent last-seat reservations
// exactly one commits and the other rolls its insert back. The pre-checks
// exist only to give clean errors on the common paths.
func (s *bookingService) Reserve(principal models.Principal, classID string) (*models.Booking, error) {
	class, err := s.classRepo.GetClassByID(classID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrClassNotFound
		}
		return nil, fmt.Errorf("failed to load class for booking: %w", err)
	}
	if class.Status != models.ClassStatusActive {
		return nil, ErrClassNotActive
	}
	if class.EnrolledCount >= class.Capacity {
		return nil, ErrCapacityExceeded
	}

	alreadyBooked, err := s.bookingRepo.HasActiveBooking(principal.ID, classID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing booking: %w", err)
	}
	if alreadyBooked {
		return nil, ErrDuplicateBooking
	}

	booking := &models.Booking{
		ID:             uuid.NewString(),
		MemberID:       principal.ID,
		MemberName:     principal.FullName,
		ClassID:        class.ID,
		ClassName:      class.Name,
		ClassStartTime: class.StartTime,
		Status:         models.BookingStatusBooked,
		PaymentStatus:  models.PaymentStatusPending,
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin reservation transaction: %w", err)
	}
	defer tx.Rollback()

	if err := s.bookingRepo.CreateBooking(tx, booking); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrDuplicateBooking
		}
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	if err := s.classRepo.IncrementEnrollment(tx, classID); err != nil {
		if errors.Is(err, repositories.ErrCapacityReached) {
			return nil, ErrCapacityExceeded
		}
		return nil, fmt.Errorf("failed to take seat in class: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit reservation: %w", err)
	}

	s.notifier.Notify(principal.ID,
		"Booking Confirmed",
		fmt.Sprintf("Successfully booked %s class", class.Name),
		models.NotificationTypeBooking)

	return booking, nil
}

// Cancel moves a booked reservation to cancelled and frees the seat. The
// transition is conditional on status='booked': cancelling an already
// terminal booking is a no-op and never decrements the counter again.
func (s *bookingService) Cancel(principal models.Principal, bookingID string) (*models.Booking, error) {
	booking, err := s.bookingRepo.GetBookingByID(bookingID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to load booking for cancellation: %w", err)
	}

	if booking.MemberID != principal.ID && !principal.IsStaff() {
		return nil, ErrBookingForbidden
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin cancellation transaction: %w", err)
	}
	defer tx.Rollback()

	flipped, err := s.bookingRepo.TransitionStatus(tx, bookingID,
		models.BookingStatusBooked, models.BookingStatusCancelled)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel booking: %w", err)
	}
	if !flipped {
		// Already cancelled/attended/no_show; return the booking as-is.
		return booking, nil
	}

	if err := s.classRepo.DecrementEnrollment(tx, booking.ClassID); err != nil {
		return nil, fmt.Errorf("failed to release seat in class: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit cancellation: %w", err)
	}

	s.notifier.Notify(booking.MemberID,
		"Booking Cancelled",
		fmt.Sprintf("Your booking for %s has been cancelled", booking.ClassName),
		models.NotificationTypeBooking)

	booking.Status = models.BookingStatusCancelled
	return booking, nil
}

func (s *bookingService) ListForMember(principal models.Principal) ([]models.Booking, error) {
	bookings, err := s.bookingRepo.ListBookingsByMember(principal.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list member bookings: %w", err)
	}
	return bookings, nil
}

// MarkAttendance records attended/no_show for a booked member. The seat was
// consumed at reservation time, so the enrollment counter is untouched.
func (s *bookingService) MarkAttendance(bookingID, status string) (*models.Booking, error) {
	if !models.IsValidAttendanceStatus(status) {
		return nil, ErrBadAttendance
	}

	booking, err := s.bookingRepo.GetBookingByID(bookingID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to load booking for attendance: %w", err)
	}

	flipped, err := s.bookingRepo.TransitionStatus(s.db, bookingID,
		models.BookingStatusBooked, status)
	if err != nil {
		return nil, fmt.Errorf("failed to record attendance: %w", err)
	}
	if !flipped {
		return nil, ErrBookingAlreadyOver
	}

	if status == models.BookingStatusNoShow {
		utils.LogInfo("member missed class", map[string]interface{}{
			"booking_id": bookingID,
			"member_id":  booking.MemberID,
		})
	}

	booking.Status = status
	return booking, nil
}
