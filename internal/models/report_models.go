package models

// CateringMode classifies the outcome of resolving a booking's catering selection
// against the current catalog and the global catering switch.
type CateringMode string

const (
	// CateringVenueOnly: catering is globally disabled; all menu fields are ignored.
	CateringVenueOnly CateringMode = "VENUE_ONLY"
	// CateringCustom: the booking's custom item lists are authoritative.
	CateringCustom CateringMode = "CUSTOM"
	// CateringPackage: a catalog package supplies the items verbatim.
	CateringPackage CateringMode = "PACKAGE"
	// CateringPackageNotFound: the referenced package no longer exists in the catalog.
	CateringPackageNotFound CateringMode = "PACKAGE_NOT_FOUND"
	// CateringNone: the booking carries no catering selection at all.
	CateringNone CateringMode = "NO_CATERING"
)

// CateringResolution is the displayable, unambiguous catering description derived
// from a booking's stored fields plus the current catalog.
type CateringResolution struct {
	Mode        CateringMode `json:"mode"`
	PackageName string       `json:"packageName"`
	GuestItems  []string     `json:"guestItems"`
	BrideItems  []string     `json:"brideItems"`
}

// BookingReport is the read-only snapshot of a single booking handed to external
// document rendering. It applies the same catering resolution rules as the live
// views; it never carries divergent logic.
type BookingReport struct {
	ID          string        `json:"id"`
	ClientName  string        `json:"clientName"`
	Contact     string        `json:"contact"`
	PhoneNumber string        `json:"phoneNumber"`
	Date        string        `json:"date"`
	Slot        SlotType      `json:"slot"`
	Status      BookingStatus `json:"status"`

	Guests       int     `json:"guests"`
	TotalAmount  float64 `json:"totalAmount"`
	PerGuestCost float64 `json:"perGuestCost"`

	Catering CateringResolution `json:"catering"`
	Addons   []string           `json:"addons"`
	Notes    string             `json:"notes,omitempty"`

	GeneratedAt string `json:"generatedAt"` // RFC 3339
}

// DashboardSummary holds the headline figures for the owner dashboard.
type DashboardSummary struct {
	TotalRevenue     float64               `json:"totalRevenue"` // approved bookings only
	BookingsByStatus map[BookingStatus]int `json:"bookingsByStatus"`
	PendingWeddings  int                   `json:"pendingWeddings"`
	PendingViewings  int                   `json:"pendingViewings"`
	ActiveStallItems int                   `json:"activeStallItems"`
}
