package handlers

import (
	"errors"
	"net/http"

	"wedding_hall_backend/internal/services"
	"wedding_hall_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ViewingHandler holds the viewing service.
type ViewingHandler struct {
	viewingService services.ViewingService
}

// NewViewingHandler creates a new ViewingHandler.
func NewViewingHandler(vs services.ViewingService) *ViewingHandler {
	return &ViewingHandler{viewingService: vs}
}

// GetViewings handles fetching all viewing requests.
func (h *ViewingHandler) GetViewings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.viewingService.GetViewings()})
}

// CreateViewing registers an intake appointment.
func (h *ViewingHandler) CreateViewing(c *gin.Context) {
	var req services.CreateViewingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateViewing: Failed to bind JSON")
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	viewing, err := h.viewingService.CreateViewing(req)
	if err != nil {
		utils.LogError(err, "CreateViewing: Error from viewingService.CreateViewing")
		if errors.Is(err, services.ErrViewingValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, err.Error(), ""))
			return
		}
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create viewing.", "Internal error"))
		return
	}
	c.JSON(http.StatusCreated, viewing)
}

// UpdateViewingStatus applies a PENDING -> APPROVED/REJECTED decision. An
// unknown identity is a no-op and answers 204.
func (h *ViewingHandler) UpdateViewingStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	viewing, err := h.viewingService.UpdateViewingStatus(c.Param("id"), req.Status)
	if err != nil {
		utils.LogError(err, "UpdateViewingStatus: Error from viewingService.UpdateViewingStatus")
		if errors.Is(err, services.ErrStatusDecision) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, err.Error(), ""))
			return
		}
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update viewing status.", "Internal error"))
		return
	}
	if viewing == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, viewing)
}
