package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"wedding_hall_backend/internal/services"
	"wedding_hall_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AvailabilityHandler holds the availability service.
type AvailabilityHandler struct {
	availabilityService services.AvailabilityService
}

// NewAvailabilityHandler creates a new AvailabilityHandler.
func NewAvailabilityHandler(as services.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{availabilityService: as}
}

// GetMonthSchedule returns one slot state per day of the requested month
// (current month when no cursor is given).
func (h *AvailabilityHandler) GetMonthSchedule(c *gin.Context) {
	now := time.Now()
	year, _ := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(now.Year())))
	month, _ := strconv.Atoi(c.DefaultQuery("month", strconv.Itoa(int(now.Month()))))

	schedule, err := h.availabilityService.MonthSchedule(year, month)
	if err != nil {
		if errors.Is(err, services.ErrAvailabilityValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, err.Error(), ""))
			return
		}
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch month schedule.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": schedule, "year": year, "month": month})
}

// GetSlotState returns the slot state for one date; dates without a stored
// record answer with the virtual fully-open state.
func (h *AvailabilityHandler) GetSlotState(c *gin.Context) {
	slot, err := h.availabilityService.GetSlotState(c.Param("date"))
	if err != nil {
		if errors.Is(err, services.ErrAvailabilityValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, err.Error(), ""))
			return
		}
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch slot state.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, slot)
}

type toggleSlotRequest struct {
	Period string `json:"period" binding:"required"` // day or night
}

// ToggleSlot flips one period of one date.
func (h *AvailabilityHandler) ToggleSlot(c *gin.Context) {
	var req toggleSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	slot, err := h.availabilityService.ToggleSlot(c.Param("date"), req.Period)
	if err != nil {
		utils.LogError(err, "ToggleSlot: Error from availabilityService.ToggleSlot")
		if errors.Is(err, services.ErrAvailabilityValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, err.Error(), ""))
			return
		}
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to toggle slot.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, slot)
}
