package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"supreme_fitness_backend/internal/middleware"
	"supreme_fitness_backend/internal/services"
	"supreme_fitness_backend/pkg/utils"
)

// ProgressHandler holds the progress service.
type ProgressHandler struct {
	progressService services.ProgressService
}

// NewProgressHandler creates a new ProgressHandler.
func NewProgressHandler(ps services.ProgressService) *ProgressHandler {
	return &ProgressHandler{progressService: ps}
}

// RecordProgress handles appending a body-metric snapshot for the member.
func (h *ProgressHandler) RecordProgress(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Authentication required.", ""))
		return
	}

	var req services.RecordProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	entry, err := h.progressService.RecordEntry(principal, req)
	if err != nil {
		if errors.Is(err, services.ErrProgressValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, err.Error(), ""))
		} else {
			utils.LogError(err, "RecordProgress: Error from progressService.RecordEntry")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to record progress.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// ListMemberProgress handles fetching the member's history, newest first.
func (h *ProgressHandler) ListMemberProgress(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Authentication required.", ""))
		return
	}

	entries, err := h.progressService.ListForMember(principal)
	if err != nil {
		utils.LogError(err, "ListMemberProgress: Error from progressService.ListForMember")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch progress history.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, entries)
}
