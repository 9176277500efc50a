package ports

import (
	"context"

	"github.com/efinder/venue-booking/internal/core/domain"
)

// ListVenuesFilter carries the query parameters for listing venues.
// Zero values mean "no filter". Inactive venues are always excluded.
type ListVenuesFilter struct {
	Location    string // substring match, case-insensitive
	MinCapacity int
	MaxCapacity int
	MinPrice    float64
	MaxPrice    float64
	OwnerID     string
	Limit       int // defaults to 20 when <= 0
	Offset      int
}

// SearchVenuesFilter carries the parameters for venue text search.
type SearchVenuesFilter struct {
	Term        string // substring match on name, description or location
	MinCapacity int
	MaxPrice    float64
	Limit       int
}

// UpdateVenueFields carries partial updates; nil means "leave unchanged".
type UpdateVenueFields struct {
	Name         *string
	Description  *string
	Location     *string
	Capacity     *int
	Price        *float64
	ContactEmail *string
	ContactPhone *string
	PhotoURL     *string
}

// VenueRepository defines persistence operations for venues.
type VenueRepository interface {
	Create(ctx context.Context, v *domain.Venue) (*domain.Venue, error)
	FindByID(ctx context.Context, id string) (*domain.Venue, error)
	// List returns active venues matching filter, newest first.
	List(ctx context.Context, filter ListVenuesFilter) ([]*domain.Venue, error)
	// Search returns active venues whose name, description or location
	// contains the term, newest first.
	Search(ctx context.Context, filter SearchVenuesFilter) ([]*domain.Venue, error)
	Update(ctx context.Context, id string, fields UpdateVenueFields) (*domain.Venue, error)
	// SoftDelete flips IsActive to false; the record is retained.
	SoftDelete(ctx context.Context, id string) error
}
