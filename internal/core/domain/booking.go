package domain

import "time"

// BookingStatus is the lifecycle state of a booking. Transitions are
// unrestricted within the enumerated set: any status may move to any other.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Valid reports whether s is one of the enumerated statuses.
func (s BookingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// Blocks reports whether a booking in this status occupies its venue slot.
// Cancelled bookings never block availability.
func (s BookingStatus) Blocks() bool {
	return s == StatusPending || s == StatusConfirmed
}

// Booking reserves a venue for an event on a calendar date with a wall-clock
// time window. TotalCost is copied from the venue price at creation time and
// never recomputed, even when the venue price changes later.
type Booking struct {
	ID          string        `json:"id"`
	VenueID     string        `json:"venue_id"`
	OrganizerID string        `json:"organizer_id"`
	EventName   string        `json:"event_name"`
	EventDate   time.Time     `json:"event_date"`
	StartTime   string        `json:"start_time"`
	EndTime     string        `json:"end_time"`
	TotalCost   float64       `json:"total_cost"`
	Notes       string        `json:"notes"`
	Status      BookingStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// Editable reports whether booking details may still be changed or the
// booking deleted. Only pending bookings are editable.
func (b *Booking) Editable() bool {
	return b.Status == StatusPending
}
