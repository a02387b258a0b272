package services

import (
	"time"

	"wedding_hall_backend/internal/models"
	"wedding_hall_backend/internal/repositories"
)

// --- ReportService Interface ---
//
// Read-only projections over the store: the dashboard headline figures and the
// per-booking report snapshot handed to external document rendering. Both reuse
// the derivation engine; neither duplicates resolution logic.
type ReportService interface {
	DashboardSummary() models.DashboardSummary
	ResolveBookingReport(id string) (*models.BookingReport, error)
}

type reportService struct {
	bookingRepo  repositories.BookingRepository
	viewingRepo  repositories.ViewingRepository
	catalogRepo  repositories.CatalogRepository
	settingsRepo repositories.SettingsRepository
}

// NewReportService creates a new instance of ReportService.
func NewReportService(
	br repositories.BookingRepository,
	vr repositories.ViewingRepository,
	cr repositories.CatalogRepository,
	sr repositories.SettingsRepository,
) ReportService {
	return &reportService{
		bookingRepo:  br,
		viewingRepo:  vr,
		catalogRepo:  cr,
		settingsRepo: sr,
	}
}

func (s *reportService) DashboardSummary() models.DashboardSummary {
	bookings := s.bookingRepo.GetBookings()

	summary := models.DashboardSummary{
		BookingsByStatus: map[models.BookingStatus]int{
			models.BookingStatusPending:   0,
			models.BookingStatusApproved:  0,
			models.BookingStatusRejected:  0,
			models.BookingStatusCancelled: 0,
		},
		ActiveStallItems: len(s.catalogRepo.GetStallItems()),
	}

	for _, b := range bookings {
		summary.BookingsByStatus[b.Status]++
		if b.Status == models.BookingStatusApproved {
			summary.TotalRevenue += b.TotalAmount
		}
	}
	summary.PendingWeddings = summary.BookingsByStatus[models.BookingStatusPending]

	for _, v := range s.viewingRepo.GetViewings() {
		if v.Status == models.BookingStatusPending {
			summary.PendingViewings++
		}
	}
	return summary
}

func (s *reportService) ResolveBookingReport(id string) (*models.BookingReport, error) {
	booking, err := s.bookingRepo.GetBookingByID(id)
	if err != nil {
		return nil, ErrBookingNotFound
	}

	flags := s.settingsRepo.GetFlags()
	catering := ResolveBookingCatering(*booking, s.catalogRepo.GetMenus(), flags.IsCateringEnabled)

	addons := booking.Addons
	if addons == nil {
		addons = []string{}
	}

	return &models.BookingReport{
		ID:           booking.ID,
		ClientName:   booking.ClientName,
		Contact:      booking.Contact,
		PhoneNumber:  booking.PhoneNumber,
		Date:         booking.Date,
		Slot:         booking.Slot,
		Status:       booking.Status,
		Guests:       booking.Guests,
		TotalAmount:  booking.TotalAmount,
		PerGuestCost: PerGuestCost(booking.TotalAmount, booking.Guests),
		Catering:     catering,
		Addons:       addons,
		Notes:        booking.Notes,
		GeneratedAt:  time.Now().Format(time.RFC3339),
	}, nil
}
