package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/efinder/venue-booking/internal/core/domain"
	"github.com/efinder/venue-booking/internal/core/ports"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seedBooking(repo *stubBookingRepo, venueID string, date time.Time, start, end string, status domain.BookingStatus) *domain.Booking {
	b, _ := repo.Create(context.Background(), &domain.Booking{
		VenueID:   venueID,
		EventDate: date,
		StartTime: start,
		EndTime:   end,
		Status:    status,
	})
	return b
}

func TestAvailability_EmptyDateIsAvailable(t *testing.T) {
	repo := newStubBookingRepo()
	svc := NewAvailabilityService(repo, zerolog.Nop())

	check, err := svc.Check(context.Background(), ports.AvailabilityQuery{
		VenueID: "venue-1",
		Date:    day(2024, 6, 1),
	})
	if err != nil {
		t.Fatalf("Check returned error: %v", err)
	}
	if !check.Available {
		t.Fatalf("expected empty date to be available")
	}
	if check.TotalOnDate != 0 {
		t.Fatalf("expected 0 bookings on date, got %d", check.TotalOnDate)
	}
}

func TestAvailability_DateExclusive_BlockedByAnyWindow(t *testing.T) {
	repo := newStubBookingRepo()
	svc := NewAvailabilityService(repo, zerolog.Nop())
	seedBooking(repo, "venue-1", day(2024, 6, 1), "09:00", "11:00", domain.StatusPending)

	// No time window in the query: the whole day is taken even though the
	// existing booking only covers the morning.
	check, err := svc.Check(context.Background(), ports.AvailabilityQuery{
		VenueID: "venue-1",
		Date:    day(2024, 6, 1),
	})
	if err != nil {
		t.Fatalf("Check returned error: %v", err)
	}
	if check.Available {
		t.Fatalf("expected date-exclusive check to report unavailable")
	}
	if len(check.Conflicts) != 0 {
		t.Fatalf("date-exclusive check must not enumerate conflicts, got %d", len(check.Conflicts))
	}
	if check.TotalOnDate != 1 {
		t.Fatalf("expected 1 booking on date, got %d", check.TotalOnDate)
	}
}

func TestAvailability_AdjacentWindowsDoNotConflict(t *testing.T) {
	repo := newStubBookingRepo()
	svc := NewAvailabilityService(repo, zerolog.Nop())
	seedBooking(repo, "venue-1", day(2024, 6, 1), "09:00", "11:00", domain.StatusConfirmed)

	check, err := svc.Check(context.Background(), ports.AvailabilityQuery{
		VenueID:   "venue-1",
		Date:      day(2024, 6, 1),
		StartTime: "11:00",
		EndTime:   "13:00",
	})
	if err != nil {
		t.Fatalf("Check returned error: %v", err)
	}
	if !check.Available {
		t.Fatalf("adjacent windows must not conflict")
	}
	if check.TotalOnDate != 1 {
		t.Fatalf("expected 1 booking on date, got %d", check.TotalOnDate)
	}
}

func TestAvailability_ContainedWindowConflicts(t *testing.T) {
	repo := newStubBookingRepo()
	svc := NewAvailabilityService(repo, zerolog.Nop())
	existing := seedBooking(repo, "venue-1", day(2024, 6, 1), "09:00", "12:00", domain.StatusPending)

	check, err := svc.Check(context.Background(), ports.AvailabilityQuery{
		VenueID:   "venue-1",
		Date:      day(2024, 6, 1),
		StartTime: "10:00",
		EndTime:   "11:00",
	})
	if err != nil {
		t.Fatalf("Check returned error: %v", err)
	}
	if check.Available {
		t.Fatalf("contained window must conflict")
	}
	if len(check.Conflicts) != 1 || check.Conflicts[0].ID != existing.ID {
		t.Fatalf("expected the existing booking as conflict, got %+v", check.Conflicts)
	}
}

func TestAvailability_CancelledNeverBlocks(t *testing.T) {
	repo := newStubBookingRepo()
	svc := NewAvailabilityService(repo, zerolog.Nop())
	seedBooking(repo, "venue-1", day(2024, 6, 1), "09:00", "11:00", domain.StatusCancelled)

	check, err := svc.Check(context.Background(), ports.AvailabilityQuery{
		VenueID: "venue-1",
		Date:    day(2024, 6, 1),
	})
	if err != nil {
		t.Fatalf("Check returned error: %v", err)
	}
	if !check.Available {
		t.Fatalf("cancelled bookings must not block the date")
	}

	check, err = svc.Check(context.Background(), ports.AvailabilityQuery{
		VenueID:   "venue-1",
		Date:      day(2024, 6, 1),
		StartTime: "09:00",
		EndTime:   "11:00",
	})
	if err != nil {
		t.Fatalf("Check returned error: %v", err)
	}
	if !check.Available {
		t.Fatalf("cancelled bookings must not block the window either")
	}
}

func TestAvailability_OtherVenueAndDateIgnored(t *testing.T) {
	repo := newStubBookingRepo()
	svc := NewAvailabilityService(repo, zerolog.Nop())
	seedBooking(repo, "venue-2", day(2024, 6, 1), "09:00", "11:00", domain.StatusPending)
	seedBooking(repo, "venue-1", day(2024, 6, 2), "09:00", "11:00", domain.StatusPending)

	check, err := svc.Check(context.Background(), ports.AvailabilityQuery{
		VenueID: "venue-1",
		Date:    day(2024, 6, 1),
	})
	if err != nil {
		t.Fatalf("Check returned error: %v", err)
	}
	if !check.Available {
		t.Fatalf("bookings on other venues or dates must not block")
	}
}

func TestAvailability_ExcludeBookingID(t *testing.T) {
	repo := newStubBookingRepo()
	svc := NewAvailabilityService(repo, zerolog.Nop())
	own := seedBooking(repo, "venue-1", day(2024, 6, 1), "09:00", "11:00", domain.StatusPending)

	check, err := svc.Check(context.Background(), ports.AvailabilityQuery{
		VenueID:          "venue-1",
		Date:             day(2024, 6, 1),
		ExcludeBookingID: own.ID,
	})
	if err != nil {
		t.Fatalf("Check returned error: %v", err)
	}
	if !check.Available {
		t.Fatalf("a booking must not conflict with itself")
	}
}

func TestAvailability_BadWindowRejected(t *testing.T) {
	repo := newStubBookingRepo()
	svc := NewAvailabilityService(repo, zerolog.Nop())

	_, err := svc.Check(context.Background(), ports.AvailabilityQuery{
		VenueID:   "venue-1",
		Date:      day(2024, 6, 1),
		StartTime: "9am",
		EndTime:   "11:00",
	})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError for malformed start_time, got %v", err)
	}
}
