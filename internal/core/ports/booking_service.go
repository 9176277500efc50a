package ports

import (
	"context"
	"time"

	"github.com/efinder/venue-booking/internal/core/domain"
)

// CreateBookingInput carries the data needed to create a booking. The
// availability check at creation is date-exclusive: the time window is
// recorded but does not narrow the conflict scan.
type CreateBookingInput struct {
	VenueID     string
	OrganizerID string
	EventName   string
	EventDate   time.Time
	StartTime   string
	EndTime     string
	Notes       string
}

// BookingStats is the derived view served by the statistics endpoint.
type BookingStats struct {
	Booking *domain.Booking
	// DaysUntilEvent is the ceiling of calendar days from now to the event.
	DaysUntilEvent int
	IsUpcoming     bool
	IsPast         bool
	// Duration is end minus start rendered as "Xh Ym". A window whose end
	// precedes its start yields a negative reading; that is not guarded.
	Duration string
}

// BookingService defines use-case operations for the booking lifecycle.
type BookingService interface {
	Create(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	Get(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, filter ListBookingsFilter) ([]*domain.Booking, error)
	ListByOrganizer(ctx context.Context, organizerID string) (*domain.User, []*domain.Booking, error)
	ListByVenue(ctx context.Context, venueID string) (*domain.Venue, []*domain.Booking, error)
	// UpdateDetails edits event name, date, times and notes. Pending only.
	UpdateDetails(ctx context.Context, id string, fields UpdateBookingFields) (*domain.Booking, error)
	// UpdateStatus moves the booking to any status within the enumerated
	// set; there is no restriction on which prior status may move where.
	UpdateStatus(ctx context.Context, id string, status string) (*domain.Booking, error)
	// Delete removes the booking. Pending only.
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context, id string) (*BookingStats, error)
	// CheckAvailability runs the availability checker for an existing venue.
	CheckAvailability(ctx context.Context, q AvailabilityQuery) (*AvailabilityCheck, error)
}
