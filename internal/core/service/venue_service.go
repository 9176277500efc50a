package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/efinder/venue-booking/internal/core/domain"
	"github.com/efinder/venue-booking/internal/core/ports"
)

// defaultPageSize applies to every list operation when no limit is given.
const defaultPageSize = 20

// VenueService implements the venue directory: creation gated on the owner
// role, filtered listing, text search, in-place updates and soft deletion.
type VenueService struct {
	venues   ports.VenueRepository
	users    ports.UserRepository
	bookings ports.BookingRepository
	logger   zerolog.Logger
}

func NewVenueService(
	venues ports.VenueRepository,
	users ports.UserRepository,
	bookings ports.BookingRepository,
	logger zerolog.Logger,
) *VenueService {
	return &VenueService{venues: venues, users: users, bookings: bookings, logger: logger}
}

// Create registers a venue for an existing user holding the owner role.
func (s *VenueService) Create(ctx context.Context, input ports.CreateVenueInput) (*domain.Venue, error) {
	owner, err := s.users.FindByID(ctx, input.OwnerID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrOwnerNotFound
		}
		return nil, err
	}
	if owner.Role != domain.RoleOwner {
		return nil, domain.ErrNotOwnerRole
	}

	venue := &domain.Venue{
		Name:         input.Name,
		Description:  input.Description,
		Location:     input.Location,
		Capacity:     input.Capacity,
		Price:        input.Price,
		ContactEmail: input.ContactEmail,
		ContactPhone: input.ContactPhone,
		PhotoURL:     input.PhotoURL,
		OwnerID:      input.OwnerID,
		IsActive:     true,
	}

	created, err := s.venues.Create(ctx, venue)
	if err != nil {
		s.logger.Error().Err(err).Str("owner_id", input.OwnerID).Msg("failed to create venue")
		return nil, err
	}

	s.logger.Info().Str("venue_id", created.ID).Str("owner_id", created.OwnerID).Msg("venue created")
	return created, nil
}

func (s *VenueService) Get(ctx context.Context, id string) (*domain.Venue, error) {
	return s.venues.FindByID(ctx, id)
}

func (s *VenueService) List(ctx context.Context, filter ports.ListVenuesFilter) ([]*domain.Venue, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultPageSize
	}
	return s.venues.List(ctx, filter)
}

func (s *VenueService) Search(ctx context.Context, filter ports.SearchVenuesFilter) ([]*domain.Venue, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultPageSize
	}
	return s.venues.Search(ctx, filter)
}

// Update applies partial field changes. When the photo URL is replaced the
// previous URL is reported back so the transport layer can remove the old
// file; record write and file cleanup are not transactional.
func (s *VenueService) Update(ctx context.Context, id string, fields ports.UpdateVenueFields) (*ports.UpdateVenueResult, error) {
	existing, err := s.venues.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	replaced := ""
	if fields.PhotoURL != nil && existing.PhotoURL != "" && *fields.PhotoURL != existing.PhotoURL {
		replaced = existing.PhotoURL
	}

	updated, err := s.venues.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	return &ports.UpdateVenueResult{Venue: updated, ReplacedPhotoURL: replaced}, nil
}

// SoftDelete retires the venue. The record stays behind so existing bookings
// keep a valid reference.
func (s *VenueService) SoftDelete(ctx context.Context, id string) error {
	if _, err := s.venues.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.venues.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("venue_id", id).Msg("venue retired")
	return nil
}

func (s *VenueService) ListByOwner(ctx context.Context, ownerID string) (*domain.User, []*domain.Venue, error) {
	owner, err := s.users.FindByID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil, domain.ErrOwnerNotFound
		}
		return nil, nil, err
	}
	venues, err := s.venues.List(ctx, ports.ListVenuesFilter{OwnerID: ownerID, Limit: defaultPageSize})
	if err != nil {
		return nil, nil, err
	}
	return owner, venues, nil
}

func (s *VenueService) Stats(ctx context.Context, id string) (*domain.Venue, *ports.VenueBookingStats, error) {
	venue, err := s.venues.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	stats, err := s.bookings.StatsByVenue(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return venue, stats, nil
}
