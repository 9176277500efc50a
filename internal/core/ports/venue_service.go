package ports

import (
	"context"

	"github.com/efinder/venue-booking/internal/core/domain"
)

// CreateVenueInput carries the data needed to create a venue. PhotoURL is
// already stored by the transport layer; on failure the caller cleans the
// file up.
type CreateVenueInput struct {
	Name         string
	Description  string
	Location     string
	Capacity     int
	Price        float64
	ContactEmail string
	ContactPhone string
	PhotoURL     string
	OwnerID      string
}

// UpdateVenueResult reports the updated venue and, when the photo was
// replaced, the previous photo URL so the caller can delete the old file.
type UpdateVenueResult struct {
	Venue            *domain.Venue
	ReplacedPhotoURL string
}

// VenueService defines use-case operations for the venue directory.
type VenueService interface {
	Create(ctx context.Context, input CreateVenueInput) (*domain.Venue, error)
	Get(ctx context.Context, id string) (*domain.Venue, error)
	List(ctx context.Context, filter ListVenuesFilter) ([]*domain.Venue, error)
	Search(ctx context.Context, filter SearchVenuesFilter) ([]*domain.Venue, error)
	Update(ctx context.Context, id string, fields UpdateVenueFields) (*UpdateVenueResult, error)
	SoftDelete(ctx context.Context, id string) error
	// ListByOwner returns the owner and their active venues.
	ListByOwner(ctx context.Context, ownerID string) (*domain.User, []*domain.Venue, error)
	Stats(ctx context.Context, id string) (*domain.Venue, *VenueBookingStats, error)
}
