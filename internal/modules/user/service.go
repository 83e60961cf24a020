package user

import "context"

// Service defines the interface for profile business logic.
type Service interface {
	Register(ctx context.Context, email, password, fullName string) (*Profile, error)
	GetProfile(ctx context.Context, id string) (*Profile, error)
	// ListRiders returns rider profiles, feeding the report rider filter.
	ListRiders(ctx context.Context) ([]*Profile, error)
	UpdateRole(ctx context.Context, id string, role string) (*Profile, error)
}
