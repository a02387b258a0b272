package handlers

import (
	"net/http"

	"wedding_hall_backend/internal/services"
	"wedding_hall_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// SettingHandler holds the settings service.
type SettingHandler struct {
	settingsService services.SettingsService
}

// NewSettingHandler creates a new SettingHandler.
func NewSettingHandler(ss services.SettingsService) *SettingHandler {
	return &SettingHandler{settingsService: ss}
}

// GetSettings returns the process-wide feature flags.
func (h *SettingHandler) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, h.settingsService.GetFlags())
}

type setFlagRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// SetCateringEnabled flips the global catering switch. When disabled, every
// booking resolves as Venue Only regardless of its stored menu data.
func (h *SettingHandler) SetCateringEnabled(c *gin.Context) {
	var req setFlagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, h.settingsService.SetCateringEnabled(*req.Enabled))
}

// SetCateringOnlyMode stores the catering-without-hall operating flag.
func (h *SettingHandler) SetCateringOnlyMode(c *gin.Context) {
	var req setFlagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, h.settingsService.SetCateringOnlyMode(*req.Enabled))
}
