package domain

import "time"

// Venue is a bookable physical space owned by exactly one user with the
// owner role. Price is a flat per-day rate. An inactive venue is excluded
// from every listing and from booking; deletion only flips IsActive.
type Venue struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Location     string    `json:"location"`
	Capacity     int       `json:"capacity"`
	Price        float64   `json:"price"`
	ContactEmail string    `json:"contact_email"`
	ContactPhone string    `json:"contact_phone"`
	PhotoURL     string    `json:"photo_url,omitempty"`
	OwnerID      string    `json:"owner_id"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
