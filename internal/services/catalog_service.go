package services

import (
	"errors"
	"fmt"
	"strings"

	"wedding_hall_backend/internal/models"
	"wedding_hall_backend/internal/repositories"
	"wedding_hall_backend/pkg/utils"
)

// --- Custom Service Errors for Catalog ---
var (
	ErrCatalogValidation = errors.New("catalog data validation error")
)

// --- CatalogService Interface ---
//
// Saves are upsert-by-identity with insertion order preserved; a validation
// rejection leaves the catalog untouched. Deletes tolerate unknown identities
// and never cascade into bookings.
type CatalogService interface {
	GetMenus() []models.MenuPackage
	SaveMenuPackage(m models.MenuPackage) (*models.MenuPackage, error)
	DeleteMenuPackage(id string)

	GetAddons() []models.AddonService
	SaveAddonService(a models.AddonService) (*models.AddonService, error)
	DeleteAddonService(id string)

	GetStallItems() []string
	SetStallItems(items []string) []string
}

type catalogService struct {
	catalogRepo repositories.CatalogRepository
}

// NewCatalogService creates a new instance of CatalogService.
func NewCatalogService(cr repositories.CatalogRepository) CatalogService {
	return &catalogService{catalogRepo: cr}
}

func (s *catalogService) GetMenus() []models.MenuPackage {
	return s.catalogRepo.GetMenus()
}

func (s *catalogService) SaveMenuPackage(m models.MenuPackage) (*models.MenuPackage, error) {
	if utils.IsEmpty(m.Name) {
		return nil, fmt.Errorf("%w: package name cannot be empty", ErrCatalogValidation)
	}
	if m.BasePrice <= 0 {
		return nil, fmt.Errorf("%w: base price must be positive", ErrCatalogValidation)
	}

	if m.ID == "" {
		m.ID = utils.NewEntityID(utils.MenuIDPrefix)
	}
	// PricePerPax is derived, never trusted from the caller.
	basePax := m.BasePax
	if basePax < 1 {
		basePax = 1
	}
	m.PricePerPax = m.BasePrice / float64(basePax)
	if m.Icon == "" {
		m.Icon = models.DefaultPackageIcon
	}

	stored := s.catalogRepo.SaveMenu(m)
	return &stored, nil
}

func (s *catalogService) DeleteMenuPackage(id string) {
	// Bookings referencing the package keep their dangling reference; the
	// derivation layer resolves it to a "package not found" display fallback.
	s.catalogRepo.DeleteMenu(id)
}

func (s *catalogService) GetAddons() []models.AddonService {
	return s.catalogRepo.GetAddons()
}

func (s *catalogService) SaveAddonService(a models.AddonService) (*models.AddonService, error) {
	if utils.IsEmpty(a.Name) {
		return nil, fmt.Errorf("%w: addon name cannot be empty", ErrCatalogValidation)
	}
	if a.Price <= 0 {
		return nil, fmt.Errorf("%w: addon price must be positive", ErrCatalogValidation)
	}
	if !models.IsValidAddonCategory(string(a.Category)) {
		return nil, fmt.Errorf("%w: invalid addon category '%s'", ErrCatalogValidation, a.Category)
	}

	if a.ID == "" {
		a.ID = utils.NewEntityID(utils.AddonIDPrefix)
	}
	if a.Icon == "" {
		a.Icon = models.IconForCategory(a.Category)
	}

	stored := s.catalogRepo.SaveAddon(a)
	return &stored, nil
}

func (s *catalogService) DeleteAddonService(id string) {
	// Booking addon lists store names, not identities, so nothing to clean up.
	s.catalogRepo.DeleteAddon(id)
}

func (s *catalogService) GetStallItems() []string {
	return s.catalogRepo.GetStallItems()
}

// SetStallItems replaces the whole stall list. Blank entries are dropped, order
// is kept. Stalls have no identity beyond their name.
func (s *catalogService) SetStallItems(items []string) []string {
	cleaned := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	s.catalogRepo.SetStallItems(cleaned)
	return cleaned
}
