package domain

import "time"

const (
	RoleOwner     = "owner"
	RoleOrganizer = "organizer"
)

// User models an account in the system: either a venue owner or an event
// organizer. The role decides which side of a booking the user may stand on
// and is never reassigned by booking flows.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ValidRole reports whether r is one of the two supported roles.
func ValidRole(r string) bool {
	return r == RoleOwner || r == RoleOrganizer
}
