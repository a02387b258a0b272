package router

import (
	"wedding_hall_backend/internal/handlers"
	"wedding_hall_backend/internal/repositories"
	"wedding_hall_backend/internal/services"
	"wedding_hall_backend/internal/store"
	"wedding_hall_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// Setup initializes the routing for the application.
func Setup(engine *gin.Engine, s *store.Store) {
	// Initialize Repositories
	bookingRepo := repositories.NewBookingRepository(s)
	viewingRepo := repositories.NewViewingRepository(s)
	catalogRepo := repositories.NewCatalogRepository(s)
	availabilityRepo := repositories.NewAvailabilityRepository(s)
	settingsRepo := repositories.NewSettingsRepository(s)

	// Initialize Services
	bookingService := services.NewBookingService(bookingRepo, catalogRepo, settingsRepo)
	viewingService := services.NewViewingService(viewingRepo)
	catalogService := services.NewCatalogService(catalogRepo)
	availabilityService := services.NewAvailabilityService(availabilityRepo)
	settingsService := services.NewSettingsService(settingsRepo)
	reportService := services.NewReportService(bookingRepo, viewingRepo, catalogRepo, settingsRepo)
	insightService := services.NewInsightService(
		bookingRepo,
		viewingRepo,
		utils.Getenv("INSIGHTS_API_URL", "https://generativelanguage.googleapis.com"),
		utils.Getenv("INSIGHTS_API_KEY", ""),
		utils.Getenv("INSIGHTS_MODEL", "gemini-3-flash-preview"),
	)

	// Initialize Handlers
	bookingHandler := handlers.NewBookingHandler(bookingService)
	viewingHandler := handlers.NewViewingHandler(viewingService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService)
	settingHandler := handlers.NewSettingHandler(settingsService)
	reportHandler := handlers.NewReportHandler(reportService, insightService)

	apiV1 := engine.Group("/api/v1")
	{
		SetupBookingRoutes(apiV1, bookingHandler, reportHandler)
		SetupViewingRoutes(apiV1, viewingHandler)
		SetupCatalogRoutes(apiV1, catalogHandler)
		SetupAvailabilityRoutes(apiV1, availabilityHandler)
		SetupSettingsRoutes(apiV1, settingHandler)
		SetupReportRoutes(apiV1, reportHandler)
	}
}
