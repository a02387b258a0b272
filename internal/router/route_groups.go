package router

import (
	"wedding_hall_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupBookingRoutes sets up the booking registry routes.
func SetupBookingRoutes(apiGroup *gin.RouterGroup, bookingHandler *handlers.BookingHandler, reportHandler *handlers.ReportHandler) {
	bookingRoutes := apiGroup.Group("/bookings")
	{
		bookingRoutes.GET("", bookingHandler.GetBookings)
		bookingRoutes.POST("", bookingHandler.SaveBooking)
		bookingRoutes.GET("/:id", bookingHandler.GetBookingByID)
		bookingRoutes.PATCH("/:id/status", bookingHandler.UpdateBookingStatus)
		bookingRoutes.POST("/:id/addons/toggle", bookingHandler.ToggleAddon)
		bookingRoutes.GET("/:id/catering", bookingHandler.GetBookingCatering)
		bookingRoutes.GET("/:id/report", reportHandler.GetBookingReport)
	}
}

// SetupViewingRoutes sets up the viewing appointment routes.
func SetupViewingRoutes(apiGroup *gin.RouterGroup, viewingHandler *handlers.ViewingHandler) {
	viewingRoutes := apiGroup.Group("/viewings")
	{
		viewingRoutes.GET("", viewingHandler.GetViewings)
		viewingRoutes.POST("", viewingHandler.CreateViewing)
		viewingRoutes.PATCH("/:id/status", viewingHandler.UpdateViewingStatus)
	}
}

// SetupCatalogRoutes sets up the menu package, addon portfolio and stall routes.
func SetupCatalogRoutes(apiGroup *gin.RouterGroup, catalogHandler *handlers.CatalogHandler) {
	menuRoutes := apiGroup.Group("/menus")
	{
		menuRoutes.GET("", catalogHandler.GetMenus)
		menuRoutes.POST("", catalogHandler.SaveMenu)
		menuRoutes.DELETE("/:id", catalogHandler.DeleteMenu)
	}

	addonRoutes := apiGroup.Group("/addons")
	{
		addonRoutes.GET("", catalogHandler.GetAddons)
		addonRoutes.POST("", catalogHandler.SaveAddon)
		addonRoutes.DELETE("/:id", catalogHandler.DeleteAddon)
	}

	stallRoutes := apiGroup.Group("/stalls")
	{
		stallRoutes.GET("", catalogHandler.GetStalls)
		stallRoutes.PUT("", catalogHandler.SetStalls)
	}
}

// SetupAvailabilityRoutes sets up the availability calendar routes.
func SetupAvailabilityRoutes(apiGroup *gin.RouterGroup, availabilityHandler *handlers.AvailabilityHandler) {
	availabilityRoutes := apiGroup.Group("/availability")
	{
		availabilityRoutes.GET("", availabilityHandler.GetMonthSchedule)
		availabilityRoutes.GET("/:date", availabilityHandler.GetSlotState)
		availabilityRoutes.POST("/:date/toggle", availabilityHandler.ToggleSlot)
	}
}

// SetupSettingsRoutes sets up the feature flag routes.
func SetupSettingsRoutes(apiGroup *gin.RouterGroup, settingHandler *handlers.SettingHandler) {
	settingsRoutes := apiGroup.Group("/settings")
	{
		settingsRoutes.GET("", settingHandler.GetSettings)
		settingsRoutes.PUT("/catering", settingHandler.SetCateringEnabled)
		settingsRoutes.PUT("/catering-only-mode", settingHandler.SetCateringOnlyMode)
	}
}

// SetupReportRoutes sets up the dashboard and insight routes.
func SetupReportRoutes(apiGroup *gin.RouterGroup, reportHandler *handlers.ReportHandler) {
	apiGroup.GET("/dashboard/summary", reportHandler.GetDashboardSummary)
	apiGroup.GET("/insights", reportHandler.GetOwnerInsights)
}
