package repositories

import (
	"wedding_hall_backend/internal/models"
	"wedding_hall_backend/internal/store"
)

// ViewingRepository defines the data-access operations for viewing requests.
type ViewingRepository interface {
	GetViewings() []models.ViewingRequest
	GetViewingByID(id string) (*models.ViewingRequest, error)
	SaveViewing(v models.ViewingRequest) models.ViewingRequest
	UpdateStatus(id string, status models.BookingStatus) (*models.ViewingRequest, error)
}

type viewingRepository struct {
	store *store.Store
}

// NewViewingRepository creates a new instance of ViewingRepository.
func NewViewingRepository(s *store.Store) ViewingRepository {
	return &viewingRepository{store: s}
}

func (r *viewingRepository) GetViewings() []models.ViewingRequest {
	var out []models.ViewingRequest
	r.store.View(func(d *store.Data) {
		out = make([]models.ViewingRequest, len(d.Viewings))
		copy(out, d.Viewings)
	})
	return out
}

func (r *viewingRepository) GetViewingByID(id string) (*models.ViewingRequest, error) {
	var found *models.ViewingRequest
	r.store.View(func(d *store.Data) {
		for _, v := range d.Viewings {
			if v.ID == id {
				c := v
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

func (r *viewingRepository) SaveViewing(v models.ViewingRequest) models.ViewingRequest {
	r.store.Update(func(d *store.Data) {
		for i := range d.Viewings {
			if d.Viewings[i].ID == v.ID {
				d.Viewings[i] = v
				return
			}
		}
		d.Viewings = append(d.Viewings, v)
	})
	return v
}

func (r *viewingRepository) UpdateStatus(id string, status models.BookingStatus) (*models.ViewingRequest, error) {
	var updated *models.ViewingRequest
	r.store.Update(func(d *store.Data) {
		for i := range d.Viewings {
			if d.Viewings[i].ID == id {
				d.Viewings[i].Status = status
				c := d.Viewings[i]
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
