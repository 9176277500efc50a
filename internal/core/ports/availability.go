package ports

import (
	"context"
	"time"

	"github.com/efinder/venue-booking/internal/core/domain"
)

// AvailabilityQuery asks whether a venue accepts a new booking.
//
// With both StartTime and EndTime empty the check is date-exclusive: any
// pending or confirmed booking on the date blocks the whole day. With a time
// window the check is overlap-based under strict half-open comparison, so
// touching boundaries (one booking ending exactly when another begins) do
// not conflict.
type AvailabilityQuery struct {
	VenueID   string
	Date      time.Time
	StartTime string // "HH:MM", optional
	EndTime   string // "HH:MM", optional
	// ExcludeBookingID leaves one booking out of the scan, used when a
	// booking's own date is being edited.
	ExcludeBookingID string
}

// AvailabilityCheck is the checker's verdict.
type AvailabilityCheck struct {
	Available bool
	// Conflicts holds the overlapping bookings of a time-window check.
	// Date-exclusive checks leave it empty even when unavailable.
	Conflicts []*domain.Booking
	// TotalOnDate counts all blocking bookings on the date regardless of
	// time window.
	TotalOnDate int
}

// AvailabilityChecker decides whether a venue accepts a new booking for a
// date and optional time window. Venue existence and activity are the
// caller's concern, not the checker's.
type AvailabilityChecker interface {
	Check(ctx context.Context, q AvailabilityQuery) (*AvailabilityCheck, error)
}
