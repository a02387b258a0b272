package repositories

import (
	"wedding_hall_backend/internal/models"
	"wedding_hall_backend/internal/store"
)

// AvailabilityRepository defines the data-access operations for per-date slot
// records. A date with no record is implicitly fully open; GetSlot returns
// ErrNotFound for it so the caller can apply the virtual default without
// materializing anything.
type AvailabilityRepository interface {
	GetSlots() []models.AvailabilitySlot
	GetSlot(date string) (*models.AvailabilitySlot, error)
	// SaveSlot upserts by date, at most one record per date.
	SaveSlot(slot models.AvailabilitySlot) models.AvailabilitySlot
}

type availabilityRepository struct {
	store *store.Store
}

// NewAvailabilityRepository creates a new instance of AvailabilityRepository.
func NewAvailabilityRepository(s *store.Store) AvailabilityRepository {
	return &availabilityRepository{store: s}
}

func (r *availabilityRepository) GetSlots() []models.AvailabilitySlot {
	var out []models.AvailabilitySlot
	r.store.View(func(d *store.Data) {
		out = make([]models.AvailabilitySlot, len(d.Availability))
		copy(out, d.Availability)
	})
	return out
}

func (r *availabilityRepository) GetSlot(date string) (*models.AvailabilitySlot, error) {
	var found *models.AvailabilitySlot
	r.store.View(func(d *store.Data) {
		for _, s := range d.Availability {
			if s.Date == date {
				c := s
				found = &c
				return
			}
		}
	})
	if found == nil {
		return nil, ErrNotFound
	}
	return found, nil
}

func (r *availabilityRepository) SaveSlot(slot models.AvailabilitySlot) models.AvailabilitySlot {
	r.store.Update(func(d *store.Data) {
		for i := range d.Availability {
			if d.Availability[i].Date == slot.Date {
				d.Availability[i] = slot
				return
			}
		}
		d.Availability = append(d.Availability, slot)
	})
	return slot
}
