package handlers

import (
	"errors"
	"net/http"

	"wedding_hall_backend/internal/services"
	"wedding_hall_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ReportHandler holds the report and insight services.
type ReportHandler struct {
	reportService  services.ReportService
	insightService services.InsightService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(rs services.ReportService, is services.InsightService) *ReportHandler {
	return &ReportHandler{reportService: rs, insightService: is}
}

// GetDashboardSummary returns the headline dashboard figures.
func (h *ReportHandler) GetDashboardSummary(c *gin.Context) {
	c.JSON(http.StatusOK, h.reportService.DashboardSummary())
}

// GetBookingReport returns the read-only report snapshot for one booking,
// ready for external document rendering.
func (h *ReportHandler) GetBookingReport(c *gin.Context) {
	report, err := h.reportService.ResolveBookingReport(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, err.Error(), ""))
			return
		}
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to build booking report.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetOwnerInsights asks the external insight collaborator for a summary of the
// current bookings and viewings. Failures surface as the fixed fallback text,
// never as an error response.
func (h *ReportHandler) GetOwnerInsights(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"insights": h.insightService.OwnerInsights(c.Request.Context())})
}
