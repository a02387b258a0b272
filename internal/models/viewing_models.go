package models

// ViewingRequest is a scheduled site-visit appointment. It carries no catalog or
// pricing relationship; only its status is mutated after intake.
type ViewingRequest struct {
	ID         string        `json:"id"`
	ClientName string        `json:"clientName"`
	Contact    string        `json:"contact"`
	Date       string        `json:"date"` // YYYY-MM-DD
	Time       string        `json:"time"` // free-form, e.g. "14:00"
	Status     BookingStatus `json:"status"`
}
