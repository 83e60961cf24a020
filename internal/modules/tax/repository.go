package tax

import "context"

// Repository defines data access for tax policies.
type Repository interface {
	Create(ctx context.Context, p *Policy) error
	List(ctx context.Context) ([]*Policy, error)
	// GetActive returns the active policy, or nil when none is configured.
	GetActive(ctx context.Context) (*Policy, error)
	// SetActive activates one policy and deactivates every other in a
	// single database transaction.
	SetActive(ctx context.Context, id string) error
}
