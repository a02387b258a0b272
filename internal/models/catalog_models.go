package models

// MenuPackage is a named catering bundle with per-pax pricing derived from its base
// figures. PricePerPax is recomputed on every save and never trusted as stored truth.
type MenuPackage struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	BasePax     int      `json:"basePax"`
	BasePrice   float64  `json:"basePrice"`
	PricePerPax float64  `json:"pricePerPax"`
	Description string   `json:"description"`
	Items       []string `json:"items"`
	BrideItems  []string `json:"brideItems,omitempty"`
	Inclusions  []string `json:"inclusions,omitempty"`
	Icon        string   `json:"icon"`
}

// DefaultPackageIcon is applied to packages saved without an icon token.
const DefaultPackageIcon = "fa-utensils"

// AddonCategory is the closed set of bookable vendor-service categories.
type AddonCategory string

const (
	AddonCategoryPhotographer AddonCategory = "Photographer"
	AddonCategoryECard        AddonCategory = "E-Card"
	AddonCategoryAttire       AddonCategory = "Attire"
	AddonCategoryMC           AddonCategory = "MC"
	AddonCategorySoundSystem  AddonCategory = "Sound System"
	AddonCategoryOther        AddonCategory = "Other"
)

// IsValidAddonCategory checks if the provided string is a valid AddonCategory.
func IsValidAddonCategory(category string) bool {
	switch AddonCategory(category) {
	case AddonCategoryPhotographer,
		AddonCategoryECard,
		AddonCategoryAttire,
		AddonCategoryMC,
		AddonCategorySoundSystem,
		AddonCategoryOther:
		return true
	default:
		return false
	}
}

// IconForCategory maps an addon category to its display icon token. Unknown
// categories fall through to the generic box icon.
func IconForCategory(category AddonCategory) string {
	switch category {
	case AddonCategoryPhotographer:
		return "fa-camera"
	case AddonCategoryECard:
		return "fa-envelope-open-text"
	case AddonCategoryAttire:
		return "fa-vest"
	case AddonCategoryMC:
		return "fa-microphone-lines"
	case AddonCategorySoundSystem:
		return "fa-tower-broadcast"
	default:
		return "fa-box"
	}
}

// AddonService is a bookable standalone vendor service in the catalog. Bookings
// reference it by display name only, so deleting it never touches existing bookings.
type AddonService struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Category    AddonCategory `json:"category"`
	Price       float64       `json:"price"`
	Description string        `json:"description"`
	Icon        string        `json:"icon"`
}
