package user

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Role is the dashboard role carried by a profile.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleRider Role = "rider"
)

// Profile represents a user of the system. Riders carry inventory and
// perform POS transactions; admins manage the catalog and warehouse.
type Profile struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name"`
	Role         Role      `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Repository defines data access for profiles.
type Repository interface {
	CreateProfile(ctx context.Context, p *Profile) error
	GetProfileByID(ctx context.Context, id string) (*Profile, error)
	GetProfileByEmail(ctx context.Context, email string) (*Profile, error)
	ListRiders(ctx context.Context) ([]*Profile, error)
	UpdateRole(ctx context.Context, id string, role Role) error
}
