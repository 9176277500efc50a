package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/efinder/venue-booking/internal/core/domain"
	"github.com/efinder/venue-booking/internal/core/ports"
)

func newVenueFixture(t *testing.T) (*VenueService, *stubUserRepo, *stubVenueRepo, *stubBookingRepo) {
	t.Helper()
	users := newStubUserRepo()
	venues := newStubVenueRepo()
	bookings := newStubBookingRepo()
	svc := NewVenueService(venues, users, bookings, zerolog.Nop())
	return svc, users, venues, bookings
}

func TestVenueCreate_Success(t *testing.T) {
	svc, users, _, _ := newVenueFixture(t)
	owner, _ := users.Create(context.Background(), &domain.User{Name: "Olivia", Email: "o@example.com", Role: domain.RoleOwner})

	venue, err := svc.Create(context.Background(), ports.CreateVenueInput{
		Name:         "Grand Hall",
		Description:  "A large hall for events",
		Location:     "Madrid",
		Capacity:     200,
		Price:        500,
		ContactEmail: "hall@example.com",
		ContactPhone: "123456",
		OwnerID:      owner.ID,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if !venue.IsActive {
		t.Fatalf("new venue must start active")
	}
	if venue.OwnerID != owner.ID {
		t.Fatalf("unexpected owner id: %s", venue.OwnerID)
	}
}

func TestVenueCreate_OwnerNotFound(t *testing.T) {
	svc, _, _, _ := newVenueFixture(t)

	_, err := svc.Create(context.Background(), ports.CreateVenueInput{OwnerID: "missing"})
	if !errors.Is(err, domain.ErrOwnerNotFound) {
		t.Fatalf("expected ErrOwnerNotFound, got %v", err)
	}
}

func TestVenueCreate_OrganizerCannotOwn(t *testing.T) {
	svc, users, _, _ := newVenueFixture(t)
	organizer, _ := users.Create(context.Background(), &domain.User{Name: "Omar", Email: "omar@example.com", Role: domain.RoleOrganizer})

	_, err := svc.Create(context.Background(), ports.CreateVenueInput{OwnerID: organizer.ID})
	if !errors.Is(err, domain.ErrNotOwnerRole) {
		t.Fatalf("expected ErrNotOwnerRole, got %v", err)
	}
}

func TestVenueSoftDelete_ExcludedFromListing(t *testing.T) {
	svc, users, venues, _ := newVenueFixture(t)
	owner, _ := users.Create(context.Background(), &domain.User{Name: "Olivia", Email: "o@example.com", Role: domain.RoleOwner})
	venue, _ := venues.Create(context.Background(), &domain.Venue{Name: "Hall", OwnerID: owner.ID, IsActive: true})

	if err := svc.SoftDelete(context.Background(), venue.ID); err != nil {
		t.Fatalf("SoftDelete returned error: %v", err)
	}

	listed, err := svc.List(context.Background(), ports.ListVenuesFilter{})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(listed) != 0 {
		t.Fatalf("retired venue must not be listed, got %d", len(listed))
	}

	// The record itself survives so bookings keep a valid reference.
	got, err := svc.Get(context.Background(), venue.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.IsActive {
		t.Fatalf("retired venue must be inactive")
	}
}

func TestVenueUpdate_ReportsReplacedPhoto(t *testing.T) {
	svc, _, venues, _ := newVenueFixture(t)
	venue, _ := venues.Create(context.Background(), &domain.Venue{Name: "Hall", PhotoURL: "/uploads/old.jpg", IsActive: true})

	newURL := "/uploads/new.jpg"
	result, err := svc.Update(context.Background(), venue.ID, ports.UpdateVenueFields{PhotoURL: &newURL})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if result.ReplacedPhotoURL != "/uploads/old.jpg" {
		t.Fatalf("expected old photo url to be reported, got %q", result.ReplacedPhotoURL)
	}
	if result.Venue.PhotoURL != newURL {
		t.Fatalf("expected new photo url, got %q", result.Venue.PhotoURL)
	}

	// Updating other fields leaves the photo alone and reports nothing.
	name := "Renamed"
	result, err = svc.Update(context.Background(), venue.ID, ports.UpdateVenueFields{Name: &name})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if result.ReplacedPhotoURL != "" {
		t.Fatalf("no photo change must report no replacement, got %q", result.ReplacedPhotoURL)
	}
}

func TestVenueListByOwner_OwnerNotFound(t *testing.T) {
	svc, _, _, _ := newVenueFixture(t)

	if _, _, err := svc.ListByOwner(context.Background(), "missing"); !errors.Is(err, domain.ErrOwnerNotFound) {
		t.Fatalf("expected ErrOwnerNotFound, got %v", err)
	}
}

func TestVenueStats_Aggregates(t *testing.T) {
	svc, _, venues, bookings := newVenueFixture(t)
	venue, _ := venues.Create(context.Background(), &domain.Venue{Name: "Hall", Price: 500, IsActive: true})

	seed := func(status domain.BookingStatus, cost float64) {
		_, _ = bookings.Create(context.Background(), &domain.Booking{VenueID: venue.ID, Status: status, TotalCost: cost})
	}
	seed(domain.StatusPending, 500)
	seed(domain.StatusConfirmed, 500)
	seed(domain.StatusConfirmed, 700)
	seed(domain.StatusCancelled, 500)

	_, stats, err := svc.Stats(context.Background(), venue.ID)
	if err != nil {
		t.Fatalf("Stats returned error: %v", err)
	}
	if stats.Total != 4 || stats.Pending != 1 || stats.Confirmed != 2 || stats.Cancelled != 1 {
		t.Fatalf("unexpected counts: %+v", stats)
	}
	if stats.ConfirmedRevenue != 1200 {
		t.Fatalf("expected confirmed revenue 1200, got %v", stats.ConfirmedRevenue)
	}
}
