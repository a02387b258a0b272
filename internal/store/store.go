package store

import (
	"sync"

	"wedding_hall_backend/internal/models"
)

// Data is the authoritative in-memory entity set of the dashboard. There is no
// persistence layer behind it: the process owns the single copy, derived figures
// are recomputed on every read, and insertion order is the display order.
type Data struct {
	Bookings     []models.WeddingBooking
	Viewings     []models.ViewingRequest
	Menus        []models.MenuPackage
	Addons       []models.AddonService
	StallItems   []string
	Availability []models.AvailabilitySlot
	Flags        models.FeatureFlags
}

// Store guards the entity set with a single lock so that every command is one
// atomic read-modify-write, even though handlers run on concurrent goroutines.
type Store struct {
	mu   sync.RWMutex
	data Data
}

// New returns an empty store with default feature flags (catering enabled).
func New() *Store {
	return &Store{
		data: Data{
			Flags: models.FeatureFlags{IsCateringEnabled: true},
		},
	}
}

// View runs fn under the read lock. fn must not retain references into the data
// set beyond the call; repositories copy what they return.
func (s *Store) View(fn func(d *Data)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(&s.data)
}

// Update runs fn under the write lock.
func (s *Store) Update(fn func(d *Data)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.data)
}
