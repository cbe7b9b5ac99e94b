package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"supreme_fitness_backend/internal/services"
	"supreme_fitness_backend/pkg/utils"
)

// ClassHandler holds the class service.
type ClassHandler struct {
	classService services.ClassService
}

// NewClassHandler creates a new ClassHandler.
func NewClassHandler(cs services.ClassService) *ClassHandler {
	return &ClassHandler{classService: cs}
}

// CreateClass handles publishing a new class.
func (h *ClassHandler) CreateClass(c *gin.Context) {
	var req services.CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	class, err := h.classService.CreateClass(req)
	if err != nil {
		if errors.Is(err, services.ErrClassValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, err.Error(), ""))
		} else if errors.Is(err, services.ErrTrainerNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, err.Error(), ""))
		} else {
			utils.LogError(err, "CreateClass: Error from classService.CreateClass")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create class.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, class)
}

// ListClasses handles fetching all active classes.
func (h *ClassHandler) ListClasses(c *gin.Context) {
	classes, err := h.classService.ListActiveClasses()
	if err != nil {
		utils.LogError(err, "ListClasses: Error from classService.ListActiveClasses")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch classes.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, classes)
}

// ListTrainerClasses handles fetching a trainer's classes across statuses.
func (h *ClassHandler) ListTrainerClasses(c *gin.Context) {
	trainerID := c.Param("id")
	classes, err := h.classService.ListClassesByTrainer(trainerID)
	if err != nil {
		utils.LogError(err, "ListTrainerClasses: Error from classService.ListClassesByTrainer")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch trainer classes.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, classes)
}
