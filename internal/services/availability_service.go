package services

import (
	"errors"
	"fmt"
	"time"

	"wedding_hall_backend/internal/models"
	"wedding_hall_backend/internal/repositories"
)

// --- Custom Service Errors for Availability ---
var (
	ErrAvailabilityValidation = errors.New("availability data validation error")
)

const dateLayout = "2006-01-02"

// --- AvailabilityService Interface ---
type AvailabilityService interface {
	// GetSlotState returns the stored record for a date, or the virtual
	// fully-open record when none exists. Reading never materializes anything.
	GetSlotState(date string) (*models.AvailabilitySlot, error)
	// ToggleSlot flips exactly one period of one date. On a date with no record
	// it materializes one seeded open and flips only the toggled period.
	ToggleSlot(date string, period string) (*models.AvailabilitySlot, error)
	// MonthSchedule returns one slot state per day of the given month,
	// virtual defaults included.
	MonthSchedule(year int, month int) ([]models.AvailabilitySlot, error)
}

type availabilityService struct {
	availabilityRepo repositories.AvailabilityRepository
}

// NewAvailabilityService creates a new instance of AvailabilityService.
func NewAvailabilityService(ar repositories.AvailabilityRepository) AvailabilityService {
	return &availabilityService{availabilityRepo: ar}
}

func (s *availabilityService) GetSlotState(date string) (*models.AvailabilitySlot, error) {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, fmt.Errorf("%w: invalid date '%s', expected YYYY-MM-DD", ErrAvailabilityValidation, date)
	}

	slot, err := s.availabilityRepo.GetSlot(date)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			open := models.OpenSlot(date)
			return &open, nil
		}
		return nil, fmt.Errorf("failed to get slot state: %w", err)
	}
	return slot, nil
}

func (s *availabilityService) ToggleSlot(date string, period string) (*models.AvailabilitySlot, error) {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, fmt.Errorf("%w: invalid date '%s', expected YYYY-MM-DD", ErrAvailabilityValidation, date)
	}
	if !models.IsValidSlotPeriod(period) {
		return nil, fmt.Errorf("%w: invalid period '%s', expected day or night", ErrAvailabilityValidation, period)
	}

	slot, err := s.availabilityRepo.GetSlot(date)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("failed to get slot for toggle: %w", err)
		}
		// Implicit default is open, so the first toggle flips it shut.
		open := models.OpenSlot(date)
		slot = &open
	}

	if models.SlotPeriod(period) == models.SlotPeriodDay {
		slot.DaySlot = !slot.DaySlot
	} else {
		slot.NightSlot = !slot.NightSlot
	}

	saved := s.availabilityRepo.SaveSlot(*slot)
	return &saved, nil
}

func (s *availabilityService) MonthSchedule(year int, month int) ([]models.AvailabilitySlot, error) {
	if year < 1 || month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: invalid month %d-%d", ErrAvailabilityValidation, year, month)
	}

	stored := make(map[string]models.AvailabilitySlot)
	for _, slot := range s.availabilityRepo.GetSlots() {
		stored[slot.Date] = slot
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	schedule := make([]models.AvailabilitySlot, 0, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		date := fmt.Sprintf("%04d-%02d-%02d", year, month, day)
		if slot, ok := stored[date]; ok {
			schedule = append(schedule, slot)
		} else {
			schedule = append(schedule, models.OpenSlot(date))
		}
	}
	return schedule, nil
}
