package repositories

import (
	"wedding_hall_backend/internal/models"
	"wedding_hall_backend/internal/store"
)

// CatalogRepository defines the data-access operations for the catering catalog:
// menu packages, the addon portfolio and the flat stall list.
//
// Deletes are tolerant by design: removing a catalog entry leaves bookings that
// reference it untouched, and deleting an unknown identity is a no-op.
type CatalogRepository interface {
	GetMenus() []models.MenuPackage
	GetMenuByID(id string) (*models.MenuPackage, error)
	SaveMenu(m models.MenuPackage) models.MenuPackage
	DeleteMenu(id string)

	GetAddons() []models.AddonService
	SaveAddon(a models.AddonService) models.AddonService
	DeleteAddon(id string)

	GetStallItems() []string
	SetStallItems(items []string)
}

type catalogRepository struct {
	store *store.Store
}

// NewCatalogRepository creates a new instance of CatalogRepository.
func NewCatalogRepository(s *store.Store) CatalogRepository {
	return &catalogRepository{store: s}
}

func cloneMenu(m models.MenuPackage) models.MenuPackage {
	m.Items = cloneStrings(m.Items)
	m.BrideItems = cloneStrings(m.BrideItems)
	m.Inclusions = cloneStrings(m.Inclusions)
	return m
}

func (r *catalogRepository) GetMenus() []models.MenuPackage {
	var out []models.MenuPackage
	r.store.View(func(d *store.Data) {
		out = make([]models.MenuPackage, 0, len(d.Menus))
		for _, m := range d.Menus {
			out = append(out, cloneMenu(m))
		}
	})
	return out
}

func (r *catalogRepository) GetMenuByID(id string) (*models.MenuPackage, error) {
	var found *models.MenuPackage
	r.store.View(func(d *store.Data) {
		for _, m := range d.Menus {
			if m.ID == id {
				c := cloneMenu(m)
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

func (r *catalogRepository) SaveMenu(m models.MenuPackage) models.MenuPackage {
	stored := cloneMenu(m)
	r.store.Update(func(d *store.Data) {
		for i := range d.Menus {
			if d.Menus[i].ID == stored.ID {
				d.Menus[i] = cloneMenu(stored)
				return
			}
		}
		d.Menus = append(d.Menus, cloneMenu(stored))
	})
	return stored
}

func (r *catalogRepository) DeleteMenu(id string) {
	r.store.Update(func(d *store.Data) {
		for i := range d.Menus {
			if d.Menus[i].ID == id {
				d.Menus = append(d.Menus[:i], d.Menus[i+1:]...)
				return
			}
		}
	})
}

func (r *catalogRepository) GetAddons() []models.AddonService {
	var out []models.AddonService
	r.store.View(func(d *store.Data) {
		out = make([]models.AddonService, len(d.Addons))
		copy(out, d.Addons)
	})
	return out
}

func (r *catalogRepository) SaveAddon(a models.AddonService) models.AddonService {
	r.store.Update(func(d *store.Data) {
		for i := range d.Addons {
			if d.Addons[i].ID == a.ID {
				d.Addons[i] = a
				return
			}
		}
		d.Addons = append(d.Addons, a)
	})
	return a
}

func (r *catalogRepository) DeleteAddon(id string) {
	r.store.Update(func(d *store.Data) {
		for i := range d.Addons {
			if d.Addons[i].ID == id {
				d.Addons = append(d.Addons[:i], d.Addons[i+1:]...)
				return
			}
		}
	})
}

func (r *catalogRepository) GetStallItems() []string {
	var out []string
	r.store.View(func(d *store.Data) {
		out = make([]string, len(d.StallItems))
		copy(out, d.StallItems)
	})
	return out
}

func (r *catalogRepository) SetStallItems(items []string) {
	replacement := make([]string, len(items))
	copy(replacement, items)
	r.store.Update(func(d *store.Data) {
		d.StallItems = replacement
	})
}
