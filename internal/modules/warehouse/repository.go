package warehouse

import "context"

// Repository defines data access for warehouse stock levels.
type Repository interface {
	UpsertStock(ctx context.Context, s *Stock) error
	GetStockByProduct(ctx context.Context, productID string) (*Stock, error)
	ListStock(ctx context.Context) ([]*Stock, error)
	ListBelowMinimum(ctx context.Context) ([]*Stock, error)
}
