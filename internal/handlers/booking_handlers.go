package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"supreme_fitness_backend/internal/middleware"
	"supreme_fitness_backend/internal/services"
	"supreme_fitness_backend/pkg/utils"
)

// BookingHandler holds the booking service.
type BookingHandler struct {
	bookingService services.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(bs services.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bs}
}

// CreateBookingRequest is the reservation payload.
type CreateBookingRequest struct {
	ClassID string `json:"class_id" binding:"required"`
}

// AttendanceRequest records attended/no_show for a booking.
type AttendanceRequest struct {
	Status string `json:"status" binding:"required"`
}

// CreateBooking handles reserving a seat for the calling member.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Authentication required.", ""))
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	booking, err := h.bookingService.Reserve(principal, req.ClassID)
	if err != nil {
		if errors.Is(err, services.ErrClassNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Class not found.", ""))
		} else if errors.Is(err, services.ErrCapacityExceeded) || errors.Is(err, services.ErrDuplicateBooking) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, err.Error(), ""))
		} else if errors.Is(err, services.ErrClassNotActive) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, err.Error(), ""))
		} else {
			utils.LogError(err, "CreateBooking: Error from bookingService.Reserve")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create booking.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// ListMemberBookings handles fetching the calling member's bookings.
func (h *BookingHandler) ListMemberBookings(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Authentication required.", ""))
		return
	}

	bookings, err := h.bookingService.ListForMember(principal)
	if err != nil {
		utils.LogError(err, "ListMemberBookings: Error from bookingService.ListForMember")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch bookings.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// CancelBooking handles cancellation by the owner or staff.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Authentication required.", ""))
		return
	}

	booking, err := h.bookingService.Cancel(principal, c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Booking not found.", ""))
		} else if errors.Is(err, services.ErrBookingForbidden) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusForbidden, utils.ErrCodeForbidden, "Access denied.", ""))
		} else {
			utils.LogError(err, "CancelBooking: Error from bookingService.Cancel")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to cancel booking.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, booking)
}

// MarkAttendance handles the trainer/admin attendance record for a booking.
func (h *BookingHandler) MarkAttendance(c *gin.Context) {
	var req AttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	booking, err := h.bookingService.MarkAttendance(c.Param("id"), req.Status)
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Booking not found.", ""))
		} else if errors.Is(err, services.ErrBadAttendance) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, err.Error(), ""))
		} else if errors.Is(err, services.ErrBookingAlreadyOver) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, err.Error(), ""))
		} else {
			utils.LogError(err, "MarkAttendance: Error from bookingService.MarkAttendance")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to record attendance.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, booking)
}
