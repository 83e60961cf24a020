package warehouse

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Service defines warehouse stock business logic.
type Service interface {
	UpsertStock(ctx context.Context, req UpsertStockRequest) (*Stock, error)
	GetStock(ctx context.Context, productID string) (*Stock, error)
	ListStock(ctx context.Context) ([]*Stock, error)
	// ListLowStock returns products whose warehouse level fell below
	// their configured minimum, for the restock dashboard.
	ListLowStock(ctx context.Context) ([]*Stock, error)
}

type service struct{ repo Repository }

// NewService creates a new warehouse service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) UpsertStock(ctx context.Context, req UpsertStockRequest) (*Stock, error) {
	pid, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("invalid product_id: %w", err)
	}
	if req.Quantity < 0 {
		return nil, fmt.Errorf("quantity must not be negative")
	}
	if req.MinStock < 0 {
		return nil, fmt.Errorf("min_stock must not be negative")
	}
	stock := &Stock{
		ID:        uuid.New(),
		ProductID: pid,
		Quantity:  req.Quantity,
		MinStock:  req.MinStock,
	}
	if err := s.repo.UpsertStock(ctx, stock); err != nil {
		return nil, err
	}
	return s.repo.GetStockByProduct(ctx, req.ProductID)
}

func (s *service) GetStock(ctx context.Context, productID string) (*Stock, error) {
	return s.repo.GetStockByProduct(ctx, productID)
}

func (s *service) ListStock(ctx context.Context) ([]*Stock, error) {
	return s.repo.ListStock(ctx)
}

func (s *service) ListLowStock(ctx context.Context) ([]*Stock, error) {
	return s.repo.ListBelowMinimum(ctx)
}
