package ports

import (
	"context"

	"github.com/efinder/venue-booking/internal/core/domain"
)

// UpdateUserFields carries partial updates; nil means "leave unchanged".
type UpdateUserFields struct {
	Name  *string
	Email *string
	Role  *string
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// Create inserts a user and returns the stored record with its id.
	// A duplicate email yields domain.ErrUserExists.
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// List returns all users, newest first.
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, id string, fields UpdateUserFields) (*domain.User, error)
	// Delete removes the user record. It is booking-unaware: bookings keep
	// referencing the deleted id.
	Delete(ctx context.Context, id string) error
}
