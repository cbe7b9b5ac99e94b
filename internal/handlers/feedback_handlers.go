package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"supreme_fitness_backend/internal/middleware"
	"supreme_fitness_backend/internal/services"
	"supreme_fitness_backend/pkg/utils"
)

// FeedbackHandler holds the feedback service.
type FeedbackHandler struct {
	feedbackService services.FeedbackService
}

// NewFeedbackHandler creates a new FeedbackHandler.
func NewFeedbackHandler(fs services.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: fs}
}

// CreateFeedback handles a member submitting a rating.
func (h *FeedbackHandler) CreateFeedback(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Authentication required.", ""))
		return
	}

	var req services.CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	feedback, err := h.feedbackService.CreateFeedback(principal, req)
	if err != nil {
		if errors.Is(err, services.ErrFeedbackValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, err.Error(), ""))
		} else {
			utils.LogError(err, "CreateFeedback: Error from feedbackService.CreateFeedback")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to submit feedback.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, feedback)
}

// ListTrainerFeedback handles fetching a trainer's feedback, newest first.
func (h *FeedbackHandler) ListTrainerFeedback(c *gin.Context) {
	records, err := h.feedbackService.ListForTrainer(c.Param("id"))
	if err != nil {
		utils.LogError(err, "ListTrainerFeedback: Error from feedbackService.ListForTrainer")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch feedback.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, records)
}
