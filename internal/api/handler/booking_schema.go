package handler

import "github.com/efinder/venue-booking/internal/core/domain"

type createBookingRequest struct {
	VenueID     string `json:"venue_id"     validate:"required"`
	OrganizerID string `json:"organizer_id" validate:"required"`
	EventName   string `json:"event_name"   validate:"required,min=2,max=100"`
	EventDate   string `json:"event_date"   validate:"required"`
	StartTime   string `json:"start_time"   validate:"required"`
	EndTime     string `json:"end_time"     validate:"required"`
	Notes       string `json:"notes"        validate:"omitempty,max=500"`
}

type updateBookingRequest struct {
	EventName *string `json:"event_name" validate:"omitempty,min=2,max=100"`
	EventDate *string `json:"event_date"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
	Notes     *string `json:"notes"      validate:"omitempty,max=500"`
}

type updateBookingStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type listBookingsQuery struct {
	VenueID     string `query:"venue_id"`
	OrganizerID string `query:"organizer_id"`
	Status      string `query:"status"`
	EventDate   string `query:"event_date"`
	Limit       int    `query:"limit"`
	Offset      int    `query:"offset"`
}

type bookingResponse struct {
	Message string          `json:"message,omitempty"`
	Booking *domain.Booking `json:"booking"`
}

type bookingListResponse struct {
	Count    int               `json:"count"`
	Bookings []*domain.Booking `json:"bookings"`
}

type organizerBookingsResponse struct {
	Organizer *domain.User      `json:"organizer"`
	Count     int               `json:"count"`
	Bookings  []*domain.Booking `json:"bookings"`
}

type venueBookingsResponse struct {
	Venue    *domain.Venue     `json:"venue"`
	Count    int               `json:"count"`
	Bookings []*domain.Booking `json:"bookings"`
}

type bookingStatsResponse struct {
	Booking        *domain.Booking `json:"booking"`
	DaysUntilEvent int             `json:"days_until_event"`
	IsUpcoming     bool            `json:"is_upcoming"`
	IsPast         bool            `json:"is_past"`
	Duration       string          `json:"duration"`
}

type bookingAvailabilityResponse struct {
	VenueID     string            `json:"venue_id"`
	Date        string            `json:"date"`
	StartTime   string            `json:"start_time,omitempty"`
	EndTime     string            `json:"end_time,omitempty"`
	Available   bool              `json:"available"`
	TotalOnDate int               `json:"total_on_date"`
	Conflicts   []*domain.Booking `json:"conflicts,omitempty"`
}
