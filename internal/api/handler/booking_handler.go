package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/efinder/venue-booking/internal/core/domain"
	"github.com/efinder/venue-booking/internal/core/ports"
)

const dateLayout = "2006-01-02"

// BookingHandler handles HTTP requests for the booking lifecycle and the two
// availability endpoints.
type BookingHandler struct {
	service ports.BookingService
}

func NewBookingHandler(service ports.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// parseDate turns a YYYY-MM-DD string into a time.Time, or a ValidationError
// naming the field.
func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, domain.NewValidationError(field + " must be a valid date in YYYY-MM-DD format")
	}
	return t, nil
}

// Create places a new booking.
//
// @Summary      Create a booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        body  body      createBookingRequest  true  "Booking details"
// @Success      201   {object}  bookingResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	eventDate, err := parseDate("event_date", req.EventDate)
	if err != nil {
		return err
	}

	booking, err := h.service.Create(c.Request().Context(), ports.CreateBookingInput{
		VenueID:     req.VenueID,
		OrganizerID: req.OrganizerID,
		EventName:   req.EventName,
		EventDate:   eventDate,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Notes:       req.Notes,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, bookingResponse{Message: "Booking created successfully", Booking: booking})
}

// List returns bookings matching the query filters.
//
// @Summary      List bookings
// @Tags         bookings
// @Produce      json
// @Param        venue_id      query     string   false  "Venue ID"
// @Param        organizer_id  query     string   false  "Organizer ID"
// @Param        status        query     string   false  "Status filter"
// @Param        event_date    query     string   false  "Event date (YYYY-MM-DD)"
// @Param        limit         query     integer  false  "Page size (default 20)"
// @Param        offset        query     integer  false  "Page offset"
// @Success      200  {object}  bookingListResponse
// @Router       /api/bookings [get]
func (h *BookingHandler) List(c echo.Context) error {
	var q listBookingsQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}

	filter := ports.ListBookingsFilter{
		VenueID:     q.VenueID,
		OrganizerID: q.OrganizerID,
		Status:      q.Status,
		Limit:       q.Limit,
		Offset:      q.Offset,
	}
	if q.EventDate != "" {
		date, err := parseDate("event_date", q.EventDate)
		if err != nil {
			return err
		}
		filter.EventDate = date
	}

	bookings, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookingListResponse{Count: len(bookings), Bookings: bookings})
}

// Get returns one booking by id.
//
// @Summary      Get a booking
// @Tags         bookings
// @Produce      json
// @Param        id   path      string  true  "Booking ID"
// @Success      200  {object}  bookingResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/bookings/{id} [get]
func (h *BookingHandler) Get(c echo.Context) error {
	booking, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookingResponse{Booking: booking})
}

// Update edits a pending booking's details.
//
// @Summary      Update a booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        id    path      string                true  "Booking ID"
// @Param        body  body      updateBookingRequest  true  "Fields to change"
// @Success      200   {object}  bookingResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/bookings/{id} [put]
func (h *BookingHandler) Update(c echo.Context) error {
	var req updateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	fields := ports.UpdateBookingFields{
		EventName: req.EventName,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Notes:     req.Notes,
	}
	if req.EventDate != nil {
		date, err := parseDate("event_date", *req.EventDate)
		if err != nil {
			return err
		}
		fields.EventDate = &date
	}

	booking, err := h.service.UpdateDetails(c.Request().Context(), c.Param("id"), fields)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookingResponse{Message: "Booking updated successfully", Booking: booking})
}

// UpdateStatus moves a booking to another status.
//
// @Summary      Change a booking's status
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        id    path      string                      true  "Booking ID"
// @Param        body  body      updateBookingStatusRequest  true  "Target status"
// @Success      200   {object}  bookingResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/bookings/{id}/status [patch]
func (h *BookingHandler) UpdateStatus(c echo.Context) error {
	var req updateBookingStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	booking, err := h.service.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookingResponse{Message: "Booking status updated successfully", Booking: booking})
}

// Delete removes a pending booking.
//
// @Summary      Delete a booking
// @Tags         bookings
// @Produce      json
// @Param        id   path      string  true  "Booking ID"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/bookings/{id} [delete]
func (h *BookingHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Booking deleted successfully"})
}

// ByOrganizer returns an organizer's bookings, newest first.
//
// @Summary      List bookings by organizer
// @Tags         bookings
// @Produce      json
// @Param        organizerId  path      string  true  "Organizer user ID"
// @Success      200          {object}  organizerBookingsResponse
// @Failure      404          {object}  map[string]string
// @Router       /api/bookings/organizer/{organizerId} [get]
func (h *BookingHandler) ByOrganizer(c echo.Context) error {
	organizer, bookings, err := h.service.ListByOrganizer(c.Request().Context(), c.Param("organizerId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, organizerBookingsResponse{
		Organizer: organizer,
		Count:     len(bookings),
		Bookings:  bookings,
	})
}

// ByVenue returns a venue's bookings ordered by event date then start time.
//
// @Summary      List bookings by venue
// @Tags         bookings
// @Produce      json
// @Param        venueId  path      string  true  "Venue ID"
// @Success      200      {object}  venueBookingsResponse
// @Failure      404      {object}  map[string]string
// @Router       /api/bookings/venue/{venueId} [get]
func (h *BookingHandler) ByVenue(c echo.Context) error {
	venue, bookings, err := h.service.ListByVenue(c.Request().Context(), c.Param("venueId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, venueBookingsResponse{
		Venue:    venue,
		Count:    len(bookings),
		Bookings: bookings,
	})
}

// Stats returns the derived statistics view of one booking.
//
// @Summary      Booking statistics
// @Tags         bookings
// @Produce      json
// @Param        id   path      string  true  "Booking ID"
// @Success      200  {object}  bookingStatsResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/bookings/{id}/stats [get]
func (h *BookingHandler) Stats(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookingStatsResponse{
		Booking:        stats.Booking,
		DaysUntilEvent: stats.DaysUntilEvent,
		IsUpcoming:     stats.IsUpcoming,
		IsPast:         stats.IsPast,
		Duration:       stats.Duration,
	})
}

// DateAvailability answers the date-exclusive availability question for a
// venue: any pending or confirmed booking on the date blocks the whole day.
//
// @Summary      Check venue availability for a date
// @Tags         venues
// @Produce      json
// @Param        id    path      string  true  "Venue ID"
// @Param        date  query     string  true  "Date (YYYY-MM-DD)"
// @Success      200   {object}  venueAvailabilityResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/venues/{id}/availability [get]
func (h *BookingHandler) DateAvailability(c echo.Context) error {
	rawDate := c.QueryParam("date")
	if rawDate == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Date is required")
	}
	date, err := parseDate("date", rawDate)
	if err != nil {
		return err
	}

	venueID := c.Param("id")
	check, err := h.service.CheckAvailability(c.Request().Context(), ports.AvailabilityQuery{
		VenueID: venueID,
		Date:    date,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, venueAvailabilityResponse{
		VenueID:       venueID,
		Date:          date.Format(dateLayout),
		Available:     check.Available,
		TotalBookings: check.TotalOnDate,
	})
}

// WindowAvailability answers the time-overlap availability question: the
// requested [start_time, end_time) window conflicts with a booking iff the
// half-open intervals overlap, so adjacent windows never collide. Without a
// window the check degrades to date-exclusive.
//
// @Summary      Check venue availability for a time window
// @Tags         bookings
// @Produce      json
// @Param        venueId     path      string  true   "Venue ID"
// @Param        date        query     string  true   "Date (YYYY-MM-DD)"
// @Param        start_time  query     string  false  "Window start (HH:MM)"
// @Param        end_time    query     string  false  "Window end (HH:MM)"
// @Success      200         {object}  bookingAvailabilityResponse
// @Failure      400         {object}  map[string]string
// @Failure      404         {object}  map[string]string
// @Router       /api/bookings/venue/{venueId}/availability [get]
func (h *BookingHandler) WindowAvailability(c echo.Context) error {
	rawDate := c.QueryParam("date")
	if rawDate == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Date is required")
	}
	date, err := parseDate("date", rawDate)
	if err != nil {
		return err
	}

	venueID := c.Param("venueId")
	startTime := c.QueryParam("start_time")
	endTime := c.QueryParam("end_time")

	check, err := h.service.CheckAvailability(c.Request().Context(), ports.AvailabilityQuery{
		VenueID:   venueID,
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, bookingAvailabilityResponse{
		VenueID:     venueID,
		Date:        date.Format(dateLayout),
		StartTime:   startTime,
		EndTime:     endTime,
		Available:   check.Available,
		TotalOnDate: check.TotalOnDate,
		Conflicts:   check.Conflicts,
	})
}
