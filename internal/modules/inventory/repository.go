package inventory

import "context"

// Repository defines data access for rider inventory and distributions.
type Repository interface {
	// CreateDistribution inserts the distribution record and increments the
	// rider's inventory row inside a single database transaction.
	CreateDistribution(ctx context.Context, d *Distribution) error
	ListDistributions(ctx context.Context, riderID string) ([]*Distribution, error)
	ListRiderInventory(ctx context.Context, riderID string) ([]*RiderInventory, error)
	GetRiderInventory(ctx context.Context, riderID, productID string) (*RiderInventory, error)
}
