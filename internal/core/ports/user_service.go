package ports

import (
	"context"

	"github.com/efinder/venue-booking/internal/core/domain"
)

// CreateUserInput carries the data needed to register a user.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// UserService defines use-case operations for the user directory.
type UserService interface {
	Register(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, id string, fields UpdateUserFields) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	// Venues returns the user's active venues.
	Venues(ctx context.Context, id string) (*domain.User, []*domain.Venue, error)
}

// AuthService authenticates users and issues access tokens.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
