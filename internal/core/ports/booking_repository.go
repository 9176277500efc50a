package ports

import (
	"context"
	"time"

	"github.com/efinder/venue-booking/internal/core/domain"
)

// ListBookingsFilter carries the query parameters for the general booking
// listing. A non-zero EventDate is matched as the full calendar day
// [date, date+24h).
type ListBookingsFilter struct {
	VenueID     string
	OrganizerID string
	Status      string
	EventDate   time.Time
	Limit       int // defaults to 20 when <= 0
	Offset      int
}

// UpdateBookingFields carries partial detail updates; nil means "leave
// unchanged". Status is deliberately absent: it has its own operation.
type UpdateBookingFields struct {
	EventName *string
	EventDate *time.Time
	StartTime *string
	EndTime   *string
	Notes     *string
}

// VenueBookingStats aggregates bookings for one venue.
type VenueBookingStats struct {
	Total            int64
	Pending          int64
	Confirmed        int64
	Cancelled        int64
	ConfirmedRevenue float64
}

// BookingRepository defines persistence operations for bookings.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	FindByID(ctx context.Context, id string) (*domain.Booking, error)
	// List returns bookings matching filter, newest-created first.
	List(ctx context.Context, filter ListBookingsFilter) ([]*domain.Booking, error)
	// ListByOrganizer returns the organizer's bookings, newest-created first.
	ListByOrganizer(ctx context.Context, organizerID string) ([]*domain.Booking, error)
	// ListByVenue returns the venue's bookings ordered by event date then
	// start time ascending.
	ListByVenue(ctx context.Context, venueID string) ([]*domain.Booking, error)
	// ListActiveOnDate returns pending and confirmed bookings for the venue
	// whose event date equals date. Cancelled bookings are never returned.
	// A non-empty excludeID leaves that booking out (editing its own slot).
	ListActiveOnDate(ctx context.Context, venueID string, date time.Time, excludeID string) ([]*domain.Booking, error)
	UpdateDetails(ctx context.Context, id string, fields UpdateBookingFields) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error)
	Delete(ctx context.Context, id string) error
	StatsByVenue(ctx context.Context, venueID string) (*VenueBookingStats, error)
}
