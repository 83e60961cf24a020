package pos

import "context"

// Repository defines data access for POS checkouts.
type Repository interface {
	// ListRiderStock returns the rider's current inventory joined with the
	// catalog snapshot carts price from.
	ListRiderStock(ctx context.Context, riderID string) ([]RiderStock, error)

	// CreateTransaction persists the header, all items, and the per-line
	// rider inventory decrements as a single atomic unit. It returns
	// ErrDuplicateTransactionNumber on a transaction-number collision and an
	// *InsufficientStockError when a guarded decrement would drive a rider's
	// quantity negative; in both cases nothing is applied.
	CreateTransaction(ctx context.Context, t *Transaction) error

	GetByID(ctx context.Context, id string) (*Transaction, error)
	GetByNumber(ctx context.Context, number string) (*Transaction, error)
	ListByRider(ctx context.Context, riderID string) ([]*Transaction, error)
}
