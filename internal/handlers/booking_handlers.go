package handlers

import (
	"errors"
	"net/http"

	"wedding_hall_backend/internal/models"
	"wedding_hall_backend/internal/services"
	"wedding_hall_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler holds the booking service.
type BookingHandler struct {
	bookingService services.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(bs services.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bs}
}

// GetBookings handles fetching the full booking registry for table rendering.
func (h *BookingHandler) GetBookings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.bookingService.GetBookings()})
}

// GetBookingByID handles fetching a single booking.
func (h *BookingHandler) GetBookingByID(c *gin.Context) {
	booking, err := h.bookingService.GetBookingByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, err.Error(), ""))
			return
		}
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch booking.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, booking)
}

// SaveBooking handles the wholesale upsert of a booking record. The editor
// submits a complete replacement record; an empty id creates a new booking.
func (h *BookingHandler) SaveBooking(c *gin.Context) {
	var req models.WeddingBooking
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "SaveBooking: Failed to bind JSON")
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	booking, err := h.bookingService.SaveBooking(req)
	if err != nil {
		utils.LogError(err, "SaveBooking: Error from bookingService.SaveBooking")
		if errors.Is(err, services.ErrBookingValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, err.Error(), ""))
			return
		}
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to save booking.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, booking)
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateBookingStatus applies a PENDING -> APPROVED/REJECTED decision. An
// unknown identity is a no-op and answers 204.
func (h *BookingHandler) UpdateBookingStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	booking, err := h.bookingService.UpdateBookingStatus(c.Param("id"), req.Status)
	if err != nil {
		utils.LogError(err, "UpdateBookingStatus: Error from bookingService.UpdateBookingStatus")
		if errors.Is(err, services.ErrStatusDecision) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, err.Error(), ""))
			return
		}
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update booking status.", "Internal error"))
		return
	}
	if booking == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, booking)
}

type toggleAddonRequest struct {
	Name string `json:"name" binding:"required"`
}

// ToggleAddon flips one named selection on the booking's flat addon list.
func (h *BookingHandler) ToggleAddon(c *gin.Context) {
	var req toggleAddonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	booking, err := h.bookingService.ToggleAddon(c.Param("id"), req.Name)
	if err != nil {
		utils.LogError(err, "ToggleAddon: Error from bookingService.ToggleAddon")
		switch {
		case errors.Is(err, services.ErrBookingNotFound):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, err.Error(), ""))
		case errors.Is(err, services.ErrBookingValidation):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, err.Error(), ""))
		default:
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to toggle addon.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, booking)
}

// GetBookingCatering returns the effective catering resolution for one booking.
func (h *BookingHandler) GetBookingCatering(c *gin.Context) {
	resolution, err := h.bookingService.ResolveCatering(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, err.Error(), ""))
			return
		}
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to resolve catering.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, resolution)
}
