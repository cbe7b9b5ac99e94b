package services

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"supreme_fitness_backend/internal/models"
	"supreme_fitness_backend/internal/repositories"
	"supreme_fitness_backend/pkg/utils"
)

// --- Custom Service Errors for Payments ---
var (
	ErrPaymentNotFound       = errors.New("payment not found")
	ErrPaymentForbidden      = errors.New("caller may not act on this payment")
	ErrPaymentAlreadySettled = errors.New("payment is already settled")
)

// --- Payment DTOs ---
type CreateOrderRequest struct {
	BookingID string `json:"booking_id" binding:"required"`
}

// OrderResponse carries what a payment client needs to proceed. No gateway
// call is made; the order id is the payment record id.
type OrderResponse struct {
	OrderID string  `json:"order_id"`
	Amount  float64 `json:"amount"`
}

type CompletePaymentRequest struct {
	ExternalOrderID string `json:"external_order_id" binding:"required"`
}

// --- PaymentService Interface ---
type PaymentService interface {
	CreateOrder(principal models.Principal, req CreateOrderRequest) (*OrderResponse, error)
	CompleteOrder(principal models.Principal, paymentID string, req CompletePaymentRequest) (*models.Payment, error)
}

// --- paymentService Implementation ---
type paymentService struct {
	paymentRepo repositories.PaymentRepository
	bookingRepo repositories.BookingRepository
	classRepo   repositories.ClassRepository
	notifier    NotificationService
	db          *sql.DB
}

// NewPaymentService creates a new instance of PaymentService.
func NewPaymentService(
	pr repositories.PaymentRepository,
	br repositories.BookingRepository,
	cr repositories.ClassRepository,
	ns NotificationService,
	db *sql.DB,
) PaymentService {
	return &paymentService{
		paymentRepo: pr,
		bookingRepo: br,
		classRepo:   cr,
		notifier:    ns,
		db:          db,
	}
}

// CreateOrder opens a pending payment for a booking, priced from the class.
// Members may only pay for their own bookings.
func (s *paymentService) CreateOrder(principal models.Principal, req CreateOrderRequest) (*OrderResponse, error) {
	booking, err := s.bookingRepo.GetBookingByID(req.BookingID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to load booking for payment: %w", err)
	}

	if booking.MemberID != principal.ID && !principal.IsStaff() {
		return nil, ErrPaymentForbidden
	}

	class, err := s.classRepo.GetClassByID(booking.ClassID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrClassNotFound
		}
		return nil, fmt.Errorf("failed to load class for payment: %w", err)
	}

	payment := &models.Payment{
		ID:          uuid.NewString(),
		UserID:      principal.ID,
		BookingID:   &booking.ID,
		Amount:      class.Price,
		PaymentType: models.PaymentTypeClassBooking,
		Status:      models.PaymentStatusPending,
	}

	if err := s.paymentRepo.CreatePayment(s.db, payment); err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	return &OrderResponse{OrderID: payment.ID, Amount: payment.Amount}, nil
}

// CompleteOrder settles a pending payment. Completion is caller-asserted;
// no external authority is consulted. A payment settles exactly once; the
// linked booking's payment status follows, and the payer is notified.
func (s *paymentService) CompleteOrder(principal models.Principal, paymentID string, req CompletePaymentRequest) (*models.Payment, error) {
	payment, err := s.paymentRepo.GetPaymentByID(paymentID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to load payment: %w", err)
	}

	if payment.UserID != principal.ID && !principal.IsStaff() {
		return nil, ErrPaymentForbidden
	}

	completedAt := time.Now()
	settled, err := s.paymentRepo.CompletePayment(s.db, paymentID, req.ExternalOrderID, completedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to complete payment: %w", err)
	}
	if !settled {
		return nil, ErrPaymentAlreadySettled
	}

	if payment.BookingID != nil {
		if err := s.bookingRepo.SetPaymentStatus(s.db, *payment.BookingID,
			models.PaymentStatusCompleted, paymentID); err != nil {
			utils.LogError(err, "payment settled but booking payment status not updated")
		}
	}

	s.notifier.Notify(payment.UserID,
		"Payment Successful",
		fmt.Sprintf("Payment of $%.2f completed successfully", payment.Amount),
		models.NotificationTypePayment)

	payment.Status = models.PaymentStatusCompleted
	payment.ExternalOrderID = &req.ExternalOrderID
	payment.CompletedAt = &completedAt
	return payment, nil
}
