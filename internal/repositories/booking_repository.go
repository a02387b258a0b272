package repositories

import (
	"wedding_hall_backend/internal/models"
	"wedding_hall_backend/internal/store"
)

// BookingRepository defines the data-access operations for wedding bookings.
// Bookings are never physically deleted; lifecycle exits happen via status.
type BookingRepository interface {
	GetBookings() []models.WeddingBooking
	GetBookingByID(id string) (*models.WeddingBooking, error)
	// SaveBooking upserts by identity: replace in place when the id matches an
	// existing record, append at the end otherwise. The stored copy is returned.
	SaveBooking(b models.WeddingBooking) models.WeddingBooking
	// UpdateStatus replaces only the status field. ErrNotFound when id is unknown.
	UpdateStatus(id string, status models.BookingStatus) (*models.WeddingBooking, error)
}

type bookingRepository struct {
	store *store.Store
}

// NewBookingRepository creates a new instance of BookingRepository.
func NewBookingRepository(s *store.Store) BookingRepository {
	return &bookingRepository{store: s}
}

func cloneBooking(b models.WeddingBooking) models.WeddingBooking {
	b.CustomMenuItems = cloneStrings(b.CustomMenuItems)
	b.CustomBrideItems = cloneStrings(b.CustomBrideItems)
	b.Addons = cloneStrings(b.Addons)
	return b
}

func (r *bookingRepository) GetBookings() []models.WeddingBooking {
	var out []models.WeddingBooking
	r.store.View(func(d *store.Data) {
		out = make([]models.WeddingBooking, 0, len(d.Bookings))
		for _, b := range d.Bookings {
			out = append(out, cloneBooking(b))
		}
	})
	return out
}

func (r *bookingRepository) GetBookingByID(id string) (*models.WeddingBooking, error) {
	var found *models.WeddingBooking
	r.store.View(func(d *store.Data) {
		for _, b := range d.Bookings {
			if b.ID == id {
				c := cloneBooking(b)
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

func (r *bookingRepository) SaveBooking(b models.WeddingBooking) models.WeddingBooking {
	stored := cloneBooking(b)
	r.store.Update(func(d *store.Data) {
		for i := range d.Bookings {
			if d.Bookings[i].ID == stored.ID {
				d.Bookings[i] = cloneBooking(stored)
				return
			}
		}
		d.Bookings = append(d.Bookings, cloneBooking(stored))
	})
	return stored
}

func (r *bookingRepository) UpdateStatus(id string, status models.BookingStatus) (*models.WeddingBooking, error) {
	var updated *models.WeddingBooking
	r.store.Update(func(d *store.Data) {
		for i := range d.Bookings {
			if d.Bookings[i].ID == id {
				d.Bookings[i].Status = status
				c := cloneBooking(d.Bookings[i])
				updated = &c
				return
			}
		}
	})
	if updated == nil {
		return nil, ErrNotFound
	}
	return updated, nil
}
