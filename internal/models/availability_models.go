package models

// SlotPeriod names one of the two independently bookable halves of a calendar date.
type SlotPeriod string

const (
	SlotPeriodDay   SlotPeriod = "day"
	SlotPeriodNight SlotPeriod = "night"
)

// IsValidSlotPeriod checks if the provided string is a valid SlotPeriod.
func IsValidSlotPeriod(period string) bool {
	return SlotPeriod(period) == SlotPeriodDay || SlotPeriod(period) == SlotPeriodNight
}

// AvailabilitySlot records per-date openness for the day and night periods.
// A date with no record is implicitly fully open; records are only materialized
// when a slot is first toggled.
type AvailabilitySlot struct {
	Date      string `json:"date"` // YYYY-MM-DD, at most one record per date
	DaySlot   bool   `json:"daySlot"`
	NightSlot bool   `json:"nightSlot"`
}

// OpenSlot returns the virtual fully-open record for a date with no stored entry.
func OpenSlot(date string) AvailabilitySlot {
	return AvailabilitySlot{Date: date, DaySlot: true, NightSlot: true}
}
