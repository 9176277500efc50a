package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/efinder/venue-booking/internal/api/metrics"
	"github.com/efinder/venue-booking/internal/core/domain"
	"github.com/efinder/venue-booking/internal/core/ports"
)

// AvailabilityService decides whether a venue accepts a new booking for a
// date and optional time window. It scans only pending and confirmed
// bookings; cancelled bookings never block a slot.
type AvailabilityService struct {
	bookings ports.BookingRepository
	logger   zerolog.Logger
}

func NewAvailabilityService(bookings ports.BookingRepository, logger zerolog.Logger) *AvailabilityService {
	return &AvailabilityService{bookings: bookings, logger: logger}
}

// Check implements ports.AvailabilityChecker.
//
// Without a time window the policy is date-exclusive: any blocking booking
// on the date makes the venue unavailable, a one-event-per-venue-per-day
// default. With a window, a conflict exists iff
// requestedStart < existingEnd && requestedEnd > existingStart (half-open,
// so adjacent windows do not conflict).
func (s *AvailabilityService) Check(ctx context.Context, q ports.AvailabilityQuery) (*ports.AvailabilityCheck, error) {
	existing, err := s.bookings.ListActiveOnDate(ctx, q.VenueID, q.Date, q.ExcludeBookingID)
	if err != nil {
		return nil, err
	}

	check := &ports.AvailabilityCheck{TotalOnDate: len(existing)}

	if q.StartTime == "" && q.EndTime == "" {
		check.Available = len(existing) == 0
		metrics.ObserveAvailabilityCheck("date", check.Available)
		return check, nil
	}

	reqStart, err := domain.ParseClock(q.StartTime)
	if err != nil {
		return nil, domain.NewValidationError("start_time must be in HH:MM format")
	}
	reqEnd, err := domain.ParseClock(q.EndTime)
	if err != nil {
		return nil, domain.NewValidationError("end_time must be in HH:MM format")
	}

	for _, b := range existing {
		bStart, err1 := domain.ParseClock(b.StartTime)
		bEnd, err2 := domain.ParseClock(b.EndTime)
		if err1 != nil || err2 != nil {
			// Stored times are validated at creation; a malformed record
			// cannot be compared, so it is skipped rather than guessed at.
			s.logger.Warn().Str("booking_id", b.ID).Msg("booking has malformed time window, skipped in overlap scan")
			continue
		}
		if reqStart < bEnd && reqEnd > bStart {
			check.Conflicts = append(check.Conflicts, b)
		}
	}

	check.Available = len(check.Conflicts) == 0
	metrics.ObserveAvailabilityCheck("window", check.Available)
	return check, nil
}
