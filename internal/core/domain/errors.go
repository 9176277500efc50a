package domain

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrOwnerNotFound     = errors.New("owner not found")
	ErrOrganizerNotFound = errors.New("organizer not found")
	ErrVenueNotFound     = errors.New("venue not found")
	ErrBookingNotFound   = errors.New("booking not found")

	ErrUserExists         = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrNotOwnerRole     = errors.New("only venue owners can create venues")
	ErrNotOrganizerRole = errors.New("only organizers can create bookings")

	ErrVenueInactive   = errors.New("venue is not available for booking")
	ErrDateUnavailable = errors.New("venue is not available for the selected date")

	ErrBookingNotModifiable = errors.New("only pending bookings can be modified")
	ErrBookingNotDeletable  = errors.New("only pending bookings can be deleted")
	ErrInvalidStatus        = errors.New("invalid status, must be one of: pending, confirmed, cancelled")

	ErrBadClock = errors.New("time must be in HH:MM format")

	ErrPhotoTooLarge = errors.New("file too large, maximum size is 5MB")
	ErrPhotoNotImage = errors.New("only image files are allowed")
)

// ValidationError carries one human-readable message per invalid field.
// The API layer renders it as {"message": "Validation failed", "errors": [...]}.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

// NewValidationError builds a ValidationError from field messages.
func NewValidationError(msgs ...string) *ValidationError {
	return &ValidationError{Fields: msgs}
}
