package services

import (
	"errors"
	"fmt"
	"strings"

	"wedding_hall_backend/internal/models"
	"wedding_hall_backend/internal/repositories"
	"wedding_hall_backend/pkg/utils"
)

// --- Custom Service Errors for Booking ---
var (
	ErrBookingNotFound   = errors.New("booking not found")
	ErrBookingValidation = errors.New("booking data validation error")
	// ErrStatusDecision covers decisions outside the modeled workflow: targets
	// other than APPROVED/REJECTED, or records that already left PENDING.
	ErrStatusDecision = errors.New("invalid status decision")
)

// --- BookingService Interface ---
//
// SaveBooking is a wholesale upsert: the editor submits a complete replacement
// record, never a partial patch. UpdateBookingStatus on an unknown identity is a
// silent no-op returning (nil, nil).
type BookingService interface {
	GetBookings() []models.WeddingBooking
	GetBookingByID(id string) (*models.WeddingBooking, error)
	SaveBooking(b models.WeddingBooking) (*models.WeddingBooking, error)
	UpdateBookingStatus(id string, status string) (*models.WeddingBooking, error)
	ToggleAddon(id string, addon string) (*models.WeddingBooking, error)
	ResolveCatering(id string) (*models.CateringResolution, error)
}

// --- bookingService Implementation ---
type bookingService struct {
	bookingRepo  repositories.BookingRepository
	catalogRepo  repositories.CatalogRepository
	settingsRepo repositories.SettingsRepository
}

// NewBookingService creates a new instance of BookingService.
func NewBookingService(
	br repositories.BookingRepository,
	cr repositories.CatalogRepository,
	sr repositories.SettingsRepository,
) BookingService {
	return &bookingService{
		bookingRepo:  br,
		catalogRepo:  cr,
		settingsRepo: sr,
	}
}

func (s *bookingService) GetBookings() []models.WeddingBooking {
	return s.bookingRepo.GetBookings()
}

func (s *bookingService) GetBookingByID(id string) (*models.WeddingBooking, error) {
	booking, err := s.bookingRepo.GetBookingByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking by ID: %w", err)
	}
	return booking, nil
}

func (s *bookingService) SaveBooking(b models.WeddingBooking) (*models.WeddingBooking, error) {
	if b.ID == "" {
		b.ID = utils.NewEntityID(utils.BookingIDPrefix)
	}
	if b.Status == "" {
		b.Status = models.BookingStatusPending
	}
	if !models.IsValidBookingStatus(string(b.Status)) {
		return nil, fmt.Errorf("%w: invalid status '%s'", ErrBookingValidation, b.Status)
	}
	if !models.IsValidSlotType(string(b.Slot)) {
		return nil, fmt.Errorf("%w: invalid slot '%s'", ErrBookingValidation, b.Slot)
	}
	if b.Guests < 0 {
		return nil, fmt.Errorf("%w: guest count cannot be negative", ErrBookingValidation)
	}
	if b.TotalAmount < 0 {
		return nil, fmt.Errorf("%w: total amount cannot be negative", ErrBookingValidation)
	}

	stored := s.bookingRepo.SaveBooking(b)
	return &stored, nil
}

// UpdateBookingStatus applies a PENDING -> APPROVED/REJECTED decision. Only the
// status field changes; every other attribute is untouched.
func (s *bookingService) UpdateBookingStatus(id string, status string) (*models.WeddingBooking, error) {
	target := models.BookingStatus(status)
	if target != models.BookingStatusApproved && target != models.BookingStatusRejected {
		return nil, fmt.Errorf("%w: '%s' is not a decidable status", ErrStatusDecision, status)
	}

	current, err := s.bookingRepo.GetBookingByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			// Unknown identity: no-op, not an error.
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find booking to update status: %w", err)
	}
	if current.Status != models.BookingStatusPending {
		return nil, fmt.Errorf("%w: booking %s already left PENDING", ErrStatusDecision, id)
	}

	updated, err := s.bookingRepo.UpdateStatus(id, target)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}
	return updated, nil
}

// ToggleAddon flips membership of the named selection in the booking's flat addon
// list. The same primitive serves portfolio addons, stalls and free-text entries.
func (s *bookingService) ToggleAddon(id string, addon string) (*models.WeddingBooking, error) {
	name := strings.TrimSpace(addon)
	if name == "" {
		return nil, fmt.Errorf("%w: addon name cannot be empty", ErrBookingValidation)
	}

	booking, err := s.bookingRepo.GetBookingByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to find booking to toggle addon: %w", err)
	}

	if booking.HasAddon(name) {
		kept := make([]string, 0, len(booking.Addons)-1)
		for _, a := range booking.Addons {
			if a != name {
				kept = append(kept, a)
			}
		}
		booking.Addons = kept
	} else {
		booking.Addons = append(booking.Addons, name)
	}

	stored := s.bookingRepo.SaveBooking(*booking)
	return &stored, nil
}

func (s *bookingService) ResolveCatering(id string) (*models.CateringResolution, error) {
	booking, err := s.GetBookingByID(id)
	if err != nil {
		return nil, err
	}
	flags := s.settingsRepo.GetFlags()
	resolution := ResolveBookingCatering(*booking, s.catalogRepo.GetMenus(), flags.IsCateringEnabled)
	return &resolution, nil
}
