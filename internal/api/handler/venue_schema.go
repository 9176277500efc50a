package handler

import (
	"github.com/efinder/venue-booking/internal/core/domain"
	"github.com/efinder/venue-booking/internal/core/ports"
)

// Venue payloads arrive as multipart form data so a photo can ride along in
// the same request under the `photo` field.

type createVenueRequest struct {
	Name         string  `form:"name"          validate:"required,min=2,max=100"`
	Description  string  `form:"description"   validate:"required,min=10,max=1000"`
	Location     string  `form:"location"      validate:"required"`
	Capacity     int     `form:"capacity"      validate:"required,gt=0"`
	Price        float64 `form:"price"         validate:"required,gt=0"`
	ContactEmail string  `form:"contact_email" validate:"required,email"`
	ContactPhone string  `form:"contact_phone" validate:"required"`
	OwnerID      string  `form:"owner_id"      validate:"required"`
}

type updateVenueRequest struct {
	Name         *string  `form:"name"          validate:"omitempty,min=2,max=100"`
	Description  *string  `form:"description"   validate:"omitempty,min=10,max=1000"`
	Location     *string  `form:"location"`
	Capacity     *int     `form:"capacity"      validate:"omitempty,gt=0"`
	Price        *float64 `form:"price"         validate:"omitempty,gt=0"`
	ContactEmail *string  `form:"contact_email" validate:"omitempty,email"`
	ContactPhone *string  `form:"contact_phone"`
}

type listVenuesQuery struct {
	Location    string  `query:"location"`
	MinCapacity int     `query:"min_capacity"`
	MaxCapacity int     `query:"max_capacity"`
	MinPrice    float64 `query:"min_price"`
	MaxPrice    float64 `query:"max_price"`
	OwnerID     string  `query:"owner_id"`
	Limit       int     `query:"limit"`
	Offset      int     `query:"offset"`
}

type searchVenuesQuery struct {
	Search      string  `query:"search"`
	MinCapacity int     `query:"min_capacity"`
	MaxPrice    float64 `query:"max_price"`
	Limit       int     `query:"limit"`
}

type venueResponse struct {
	Message string        `json:"message,omitempty"`
	Venue   *domain.Venue `json:"venue"`
}

type venueListResponse struct {
	Count  int             `json:"count"`
	Venues []*domain.Venue `json:"venues"`
}

type ownerVenuesResponse struct {
	Owner  *domain.User    `json:"owner"`
	Count  int             `json:"count"`
	Venues []*domain.Venue `json:"venues"`
}

type venueAvailabilityResponse struct {
	VenueID       string `json:"venue_id"`
	Date          string `json:"date"`
	Available     bool   `json:"available"`
	TotalBookings int    `json:"total_bookings"`
}

type venueStatsResponse struct {
	Venue *domain.Venue            `json:"venue"`
	Stats *ports.VenueBookingStats `json:"stats"`
}
