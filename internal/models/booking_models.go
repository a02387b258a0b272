package models

// BookingStatus defines the shared lifecycle for bookings and viewing requests.
type BookingStatus string

const (
	BookingStatusPending  BookingStatus = "PENDING"
	BookingStatusApproved BookingStatus = "APPROVED"
	BookingStatusRejected BookingStatus = "REJECTED"
	// Cancelled bookings exist in the data set but no command produces the status;
	// it arrives via seed data or a wholesale booking save.
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// IsValidBookingStatus checks if the provided status string is a valid BookingStatus.
func IsValidBookingStatus(status string) bool {
	switch BookingStatus(status) {
	case BookingStatusPending,
		BookingStatusApproved,
		BookingStatusRejected,
		BookingStatusCancelled:
		return true
	default:
		return false
	}
}

// SlotType identifies which of the two bookable periods of a date an event occupies.
type SlotType string

const (
	SlotDay   SlotType = "DAY"
	SlotNight SlotType = "NIGHT"
)

// IsValidSlotType checks if the provided string is a valid SlotType.
func IsValidSlotType(slot string) bool {
	return SlotType(slot) == SlotDay || SlotType(slot) == SlotNight
}

// WeddingBooking represents one wedding-event reservation.
//
// Addons is a flat list of display names with no type discrimination: entries may
// name a portfolio addon, a stall, or free text typed by the registrar. Renaming a
// catalog entry does not retroactively rename it here.
type WeddingBooking struct {
	ID          string        `json:"id"`
	ClientName  string        `json:"clientName"`
	Contact     string        `json:"contact"`
	PhoneNumber string        `json:"phoneNumber"`
	Date        string        `json:"date"` // YYYY-MM-DD
	Slot        SlotType      `json:"slot"`
	Status      BookingStatus `json:"status"`
	Guests      int           `json:"guests"`
	TotalAmount float64       `json:"totalAmount"`

	// Catering selection. When IsCustomMenu is set the custom item lists are
	// authoritative and MenuPackageID is only a provenance hint.
	MenuPackageID    string   `json:"menuPackageId,omitempty"`
	IsCustomMenu     bool     `json:"isCustomMenu,omitempty"`
	CustomMenuItems  []string `json:"customMenuItems,omitempty"`
	CustomBrideItems []string `json:"customBrideItems,omitempty"`

	Addons []string `json:"addons,omitempty"`
	Notes  string   `json:"notes,omitempty"`
}

// HasAddon reports whether the booking already carries the named selection.
func (b *WeddingBooking) HasAddon(name string) bool {
	for _, a := range b.Addons {
		if a == name {
			return true
		}
	}
	return false
}
