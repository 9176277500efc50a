package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/efinder/venue-booking/internal/api/metrics"
	"github.com/efinder/venue-booking/internal/core/domain"
	"github.com/efinder/venue-booking/internal/core/ports"
)

// SlotLocker serializes the availability-check-then-insert sequence per
// (venue, date) so two concurrent create requests cannot both pass the check
// and double-book the day. Backed by Redis in production.
type SlotLocker interface {
	Acquire(ctx context.Context, venueID string, date time.Time) (bool, error)
	Release(ctx context.Context, venueID string, date time.Time) error
}

// BookingService implements the booking lifecycle: creation against an
// available venue, reads, detail edits, status changes, deletion and derived
// statistics.
type BookingService struct {
	bookings     ports.BookingRepository
	venues       ports.VenueRepository
	users        ports.UserRepository
	availability ports.AvailabilityChecker
	slots        SlotLocker // optional; nil degrades to an unguarded check
	logger       zerolog.Logger
}

func NewBookingService(
	bookings ports.BookingRepository,
	venues ports.VenueRepository,
	users ports.UserRepository,
	availability ports.AvailabilityChecker,
	slots SlotLocker,
	logger zerolog.Logger,
) *BookingService {
	return &BookingService{
		bookings:     bookings,
		venues:       venues,
		users:        users,
		availability: availability,
		slots:        slots,
		logger:       logger,
	}
}

// Create places a new booking. The venue must exist and be active, the
// organizer must exist and carry the organizer role, and the date-exclusive
// availability check must pass. TotalCost is frozen at the venue's current
// price and never recomputed afterwards.
func (s *BookingService) Create(ctx context.Context, input ports.CreateBookingInput) (*domain.Booking, error) {
	venue, err := s.venues.FindByID(ctx, input.VenueID)
	if err != nil {
		return nil, err
	}
	if !venue.IsActive {
		return nil, domain.ErrVenueInactive
	}

	organizer, err := s.users.FindByID(ctx, input.OrganizerID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrOrganizerNotFound
		}
		return nil, err
	}
	if organizer.Role != domain.RoleOrganizer {
		return nil, domain.ErrNotOrganizerRole
	}

	if err := validateWindow(input.StartTime, input.EndTime); err != nil {
		return nil, err
	}

	date := dateOnly(input.EventDate)

	if s.slots != nil {
		ok, err := s.slots.Acquire(ctx, input.VenueID, date)
		if err != nil {
			s.logger.Warn().Err(err).Str("venue_id", input.VenueID).Msg("slot lock unavailable, proceeding unguarded")
		} else if !ok {
			metrics.BookingConflictsTotal.Inc()
			return nil, domain.ErrDateUnavailable
		} else {
			defer func() {
				if relErr := s.slots.Release(ctx, input.VenueID, date); relErr != nil {
					s.logger.Warn().Err(relErr).Str("venue_id", input.VenueID).Msg("failed to release slot lock")
				}
			}()
		}
	}

	check, err := s.availability.Check(ctx, ports.AvailabilityQuery{VenueID: input.VenueID, Date: date})
	if err != nil {
		return nil, err
	}
	if !check.Available {
		metrics.BookingConflictsTotal.Inc()
		return nil, domain.ErrDateUnavailable
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		VenueID:     input.VenueID,
		OrganizerID: input.OrganizerID,
		EventName:   input.EventName,
		EventDate:   date,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		TotalCost:   venue.Price,
		Notes:       input.Notes,
		Status:      domain.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.bookings.Create(ctx, booking)
	if err != nil {
		s.logger.Error().Err(err).Str("venue_id", input.VenueID).Msg("failed to create booking")
		return nil, err
	}

	metrics.BookingsCreatedTotal.Inc()
	s.logger.Info().
		Str("booking_id", created.ID).
		Str("venue_id", created.VenueID).
		Str("organizer_id", created.OrganizerID).
		Str("event_date", date.Format("2006-01-02")).
		Msg("booking created")

	return created, nil
}

func (s *BookingService) Get(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookings.FindByID(ctx, id)
}

func (s *BookingService) List(ctx context.Context, filter ports.ListBookingsFilter) ([]*domain.Booking, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultPageSize
	}
	if !filter.EventDate.IsZero() {
		filter.EventDate = dateOnly(filter.EventDate)
	}
	return s.bookings.List(ctx, filter)
}

func (s *BookingService) ListByOrganizer(ctx context.Context, organizerID string) (*domain.User, []*domain.Booking, error) {
	organizer, err := s.users.FindByID(ctx, organizerID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil, domain.ErrOrganizerNotFound
		}
		return nil, nil, err
	}
	bookings, err := s.bookings.ListByOrganizer(ctx, organizerID)
	if err != nil {
		return nil, nil, err
	}
	return organizer, bookings, nil
}

func (s *BookingService) ListByVenue(ctx context.Context, venueID string) (*domain.Venue, []*domain.Booking, error) {
	venue, err := s.venues.FindByID(ctx, venueID)
	if err != nil {
		return nil, nil, err
	}
	bookings, err := s.bookings.ListByVenue(ctx, venueID)
	if err != nil {
		return nil, nil, err
	}
	return venue, bookings, nil
}

// UpdateDetails edits a pending booking. A date change re-runs the
// date-exclusive availability check against the new date, excluding the
// booking's own prior reservation.
func (s *BookingService) UpdateDetails(ctx context.Context, id string, fields ports.UpdateBookingFields) (*domain.Booking, error) {
	existing, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !existing.Editable() {
		return nil, domain.ErrBookingNotModifiable
	}

	start, end := existing.StartTime, existing.EndTime
	if fields.StartTime != nil {
		start = *fields.StartTime
	}
	if fields.EndTime != nil {
		end = *fields.EndTime
	}
	if err := validateWindow(start, end); err != nil {
		return nil, err
	}

	if fields.EventDate != nil {
		newDate := dateOnly(*fields.EventDate)
		fields.EventDate = &newDate
		if !newDate.Equal(dateOnly(existing.EventDate)) {
			check, err := s.availability.Check(ctx, ports.AvailabilityQuery{
				VenueID:          existing.VenueID,
				Date:             newDate,
				ExcludeBookingID: existing.ID,
			})
			if err != nil {
				return nil, err
			}
			if !check.Available {
				metrics.BookingConflictsTotal.Inc()
				return nil, domain.ErrDateUnavailable
			}
		}
	}

	return s.bookings.UpdateDetails(ctx, id, fields)
}

// UpdateStatus moves the booking to the target status. Any status may move
// to any other; only values outside the enumerated set are rejected.
func (s *BookingService) UpdateStatus(ctx context.Context, id string, status string) (*domain.Booking, error) {
	if _, err := s.bookings.FindByID(ctx, id); err != nil {
		return nil, err
	}
	next := domain.BookingStatus(status)
	if !next.Valid() {
		return nil, domain.ErrInvalidStatus
	}
	updated, err := s.bookings.UpdateStatus(ctx, id, next)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("booking_id", id).Str("status", status).Msg("booking status updated")
	return updated, nil
}

func (s *BookingService) Delete(ctx context.Context, id string) error {
	booking, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !booking.Editable() {
		return domain.ErrBookingNotDeletable
	}
	return s.bookings.Delete(ctx, id)
}

// Stats derives the statistics view for one booking.
func (s *BookingService) Stats(ctx context.Context, id string) (*ports.BookingStats, error) {
	booking, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &ports.BookingStats{
		Booking:        booking,
		DaysUntilEvent: daysUntilEvent(booking.EventDate, now),
		IsUpcoming:     booking.EventDate.After(now),
		IsPast:         booking.EventDate.Before(now),
		Duration:       durationString(booking.StartTime, booking.EndTime),
	}, nil
}

// CheckAvailability verifies the venue exists, then runs the checker. The
// venue's active flag deliberately does not gate the check here; only
// booking creation enforces it.
func (s *BookingService) CheckAvailability(ctx context.Context, q ports.AvailabilityQuery) (*ports.AvailabilityCheck, error) {
	if _, err := s.venues.FindByID(ctx, q.VenueID); err != nil {
		return nil, err
	}
	q.Date = dateOnly(q.Date)
	return s.availability.Check(ctx, q)
}

// validateWindow rejects malformed HH:MM strings. It does not require the
// end to follow the start; inverted windows are recorded as-is.
func validateWindow(start, end string) error {
	var msgs []string
	if _, err := domain.ParseClock(start); err != nil {
		msgs = append(msgs, "start_time must be in HH:MM format")
	}
	if _, err := domain.ParseClock(end); err != nil {
		msgs = append(msgs, "end_time must be in HH:MM format")
	}
	if len(msgs) > 0 {
		return domain.NewValidationError(msgs...)
	}
	return nil
}

// dateOnly truncates a timestamp to UTC midnight so dates compare as plain
// calendar days.
func dateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysUntilEvent is the ceiling of calendar days from now to the event.
func daysUntilEvent(eventDate, now time.Time) int {
	return int(math.Ceil(eventDate.Sub(now).Hours() / 24))
}

// durationString renders end minus start as "Xh Ym". Hours are floored and
// the minute part keeps the truncated remainder's sign, so an inverted
// window reads like "-2h -30m" rather than being rejected.
func durationString(start, end string) string {
	s, err1 := domain.ParseClock(start)
	e, err2 := domain.ParseClock(end)
	if err1 != nil || err2 != nil {
		return ""
	}
	diff := e - s
	hours := int(math.Floor(float64(diff) / 60))
	minutes := diff % 60
	return fmt.Sprintf("%dh %dm", hours, minutes)
}
