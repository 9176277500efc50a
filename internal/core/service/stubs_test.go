package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/efinder/venue-booking/internal/core/domain"
	"github.com/efinder/venue-booking/internal/core/ports"
)

// In-memory repository stubs shared by the service tests.

type stubUserRepo struct {
	users map[string]*domain.User
	seq   int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) add(u *domain.User) *domain.User {
	r.seq++
	clone := *u
	if clone.ID == "" {
		clone.ID = fmt.Sprintf("user-%d", r.seq)
	}
	r.users[clone.ID] = &clone
	out := clone
	return &out
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return nil, domain.ErrUserExists
		}
	}
	return r.add(u), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		clone := *u
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, id string, fields ports.UpdateUserFields) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if fields.Name != nil {
		u.Name = *fields.Name
	}
	if fields.Email != nil {
		for otherID, other := range r.users {
			if otherID != id && other.Email == *fields.Email {
				return nil, domain.ErrUserExists
			}
		}
		u.Email = *fields.Email
	}
	if fields.Role != nil {
		u.Role = *fields.Role
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

type stubVenueRepo struct {
	venues map[string]*domain.Venue
	seq    int
}

func newStubVenueRepo() *stubVenueRepo {
	return &stubVenueRepo{venues: make(map[string]*domain.Venue)}
}

func (r *stubVenueRepo) add(v *domain.Venue) *domain.Venue {
	r.seq++
	clone := *v
	if clone.ID == "" {
		clone.ID = fmt.Sprintf("venue-%d", r.seq)
	}
	r.venues[clone.ID] = &clone
	out := clone
	return &out
}

func (r *stubVenueRepo) Create(_ context.Context, v *domain.Venue) (*domain.Venue, error) {
	return r.add(v), nil
}

func (r *stubVenueRepo) FindByID(_ context.Context, id string) (*domain.Venue, error) {
	v, ok := r.venues[id]
	if !ok {
		return nil, domain.ErrVenueNotFound
	}
	clone := *v
	return &clone, nil
}

func (r *stubVenueRepo) List(_ context.Context, filter ports.ListVenuesFilter) ([]*domain.Venue, error) {
	var out []*domain.Venue
	for _, v := range r.venues {
		if !v.IsActive {
			continue
		}
		if filter.OwnerID != "" && v.OwnerID != filter.OwnerID {
			continue
		}
		clone := *v
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubVenueRepo) Search(_ context.Context, filter ports.SearchVenuesFilter) ([]*domain.Venue, error) {
	return r.List(context.Background(), ports.ListVenuesFilter{})
}

func (r *stubVenueRepo) Update(_ context.Context, id string, fields ports.UpdateVenueFields) (*domain.Venue, error) {
	v, ok := r.venues[id]
	if !ok {
		return nil, domain.ErrVenueNotFound
	}
	if fields.Name != nil {
		v.Name = *fields.Name
	}
	if fields.Price != nil {
		v.Price = *fields.Price
	}
	if fields.PhotoURL != nil {
		v.PhotoURL = *fields.PhotoURL
	}
	clone := *v
	return &clone, nil
}

func (r *stubVenueRepo) SoftDelete(_ context.Context, id string) error {
	v, ok := r.venues[id]
	if !ok {
		return domain.ErrVenueNotFound
	}
	v.IsActive = false
	return nil
}

type stubBookingRepo struct {
	bookings map[string]*domain.Booking
	seq      int
}

func newStubBookingRepo() *stubBookingRepo {
	return &stubBookingRepo{bookings: make(map[string]*domain.Booking)}
}

func (r *stubBookingRepo) add(b *domain.Booking) *domain.Booking {
	r.seq++
	clone := *b
	if clone.ID == "" {
		clone.ID = fmt.Sprintf("booking-%d", r.seq)
	}
	r.bookings[clone.ID] = &clone
	out := clone
	return &out
}

func (r *stubBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	return r.add(b), nil
}

func (r *stubBookingRepo) FindByID(_ context.Context, id string) (*domain.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	clone := *b
	return &clone, nil
}

func (r *stubBookingRepo) List(_ context.Context, filter ports.ListBookingsFilter) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range r.bookings {
		if filter.VenueID != "" && b.VenueID != filter.VenueID {
			continue
		}
		if filter.OrganizerID != "" && b.OrganizerID != filter.OrganizerID {
			continue
		}
		if filter.Status != "" && string(b.Status) != filter.Status {
			continue
		}
		clone := *b
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubBookingRepo) ListByOrganizer(ctx context.Context, organizerID string) ([]*domain.Booking, error) {
	return r.List(ctx, ports.ListBookingsFilter{OrganizerID: organizerID})
}

func (r *stubBookingRepo) ListByVenue(ctx context.Context, venueID string) ([]*domain.Booking, error) {
	return r.List(ctx, ports.ListBookingsFilter{VenueID: venueID})
}

func (r *stubBookingRepo) ListActiveOnDate(_ context.Context, venueID string, date time.Time, excludeID string) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range r.bookings {
		if b.VenueID != venueID || !b.EventDate.Equal(date) {
			continue
		}
		if !b.Status.Blocks() {
			continue
		}
		if excludeID != "" && b.ID == excludeID {
			continue
		}
		clone := *b
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubBookingRepo) UpdateDetails(_ context.Context, id string, fields ports.UpdateBookingFields) (*domain.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	if fields.EventName != nil {
		b.EventName = *fields.EventName
	}
	if fields.EventDate != nil {
		b.EventDate = *fields.EventDate
	}
	if fields.StartTime != nil {
		b.StartTime = *fields.StartTime
	}
	if fields.EndTime != nil {
		b.EndTime = *fields.EndTime
	}
	if fields.Notes != nil {
		b.Notes = *fields.Notes
	}
	clone := *b
	return &clone, nil
}

func (r *stubBookingRepo) UpdateStatus(_ context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	b.Status = status
	clone := *b
	return &clone, nil
}

func (r *stubBookingRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.bookings[id]; !ok {
		return domain.ErrBookingNotFound
	}
	delete(r.bookings, id)
	return nil
}

func (r *stubBookingRepo) StatsByVenue(_ context.Context, venueID string) (*ports.VenueBookingStats, error) {
	stats := &ports.VenueBookingStats{}
	for _, b := range r.bookings {
		if b.VenueID != venueID {
			continue
		}
		stats.Total++
		switch b.Status {
		case domain.StatusPending:
			stats.Pending++
		case domain.StatusConfirmed:
			stats.Confirmed++
			stats.ConfirmedRevenue += b.TotalCost
		case domain.StatusCancelled:
			stats.Cancelled++
		}
	}
	return stats, nil
}

// stubSlotLock records acquisitions and can be told to refuse them.
type stubSlotLock struct {
	denied   bool
	acquires int
	releases int
}

func (l *stubSlotLock) Acquire(_ context.Context, venueID string, date time.Time) (bool, error) {
	l.acquires++
	return !l.denied, nil
}

func (l *stubSlotLock) Release(_ context.Context, venueID string, date time.Time) error {
	l.releases++
	return nil
}
