package services

// The derivation engine: pure read-side projections that turn a booking's stored
// fields plus the current catalog into displayable figures. No caching — the
// store is small and recomputation is cheap, so every read resolves afresh.

import "wedding_hall_backend/internal/models"

// Display names used by catering resolution.
const (
	CateringNameVenueOnly  = "Venue Only"
	CateringNameCustom     = "Custom Bespoke Menu"
	CateringNameNoCatering = "No Catering"
)

// ResolveBookingCatering computes the effective catering resolution for a booking
// against the given menu catalog, with the global catering switch passed in
// explicitly so the function stays pure.
//
// Precedence: disabled catering wins over everything; a custom menu wins over the
// package reference (the reference then only serves as provenance); a resolvable
// package supplies its items verbatim; a dangling reference degrades to a
// "package not found" display fallback rather than an error; no reference at all
// means no catering was sold.
func ResolveBookingCatering(b models.WeddingBooking, menus []models.MenuPackage, cateringEnabled bool) models.CateringResolution {
	if !cateringEnabled {
		return models.CateringResolution{
			Mode:        models.CateringVenueOnly,
			PackageName: CateringNameVenueOnly,
			GuestItems:  []string{},
			BrideItems:  []string{},
		}
	}

	if b.IsCustomMenu {
		name := CateringNameCustom
		if b.MenuPackageID != "" {
			if pkg := findMenu(menus, b.MenuPackageID); pkg != nil {
				name = "Customized from " + pkg.Name
			}
		}
		return models.CateringResolution{
			Mode:        models.CateringCustom,
			PackageName: name,
			GuestItems:  orEmpty(b.CustomMenuItems),
			BrideItems:  orEmpty(b.CustomBrideItems),
		}
	}

	if b.MenuPackageID != "" {
		pkg := findMenu(menus, b.MenuPackageID)
		if pkg == nil {
			// Dangling reference: the package was deleted after the booking
			// selected it. Show the raw stored identifier, never crash.
			return models.CateringResolution{
				Mode:        models.CateringPackageNotFound,
				PackageName: b.MenuPackageID,
				GuestItems:  []string{},
				BrideItems:  []string{},
			}
		}
		return models.CateringResolution{
			Mode:        models.CateringPackage,
			PackageName: pkg.Name,
			GuestItems:  orEmpty(pkg.Items),
			BrideItems:  orEmpty(pkg.BrideItems),
		}
	}

	return models.CateringResolution{
		Mode:        models.CateringNone,
		PackageName: CateringNameNoCatering,
		GuestItems:  []string{},
		BrideItems:  []string{},
	}
}

// PerGuestCost derives the informational per-guest figure. A zero guest count
// divides by one instead of failing; the result is then indicative only.
func PerGuestCost(totalAmount float64, guests int) float64 {
	if guests < 1 {
		guests = 1
	}
	return totalAmount / float64(guests)
}

func findMenu(menus []models.MenuPackage, id string) *models.MenuPackage {
	for i := range menus {
		if menus[i].ID == id {
			return &menus[i]
		}
	}
	return nil
}

func orEmpty(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
