package inventory

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/fahrizalfarid/rider-pos-backend/pkg/events"
)

// Service defines rider inventory and distribution business logic.
type Service interface {
	// Distribute records a warehouse-to-rider transfer and increments the
	// rider's on-hand quantity for the product.
	Distribute(ctx context.Context, req DistributeRequest) (*Distribution, error)
	ListDistributions(ctx context.Context, riderID string) ([]*Distribution, error)
	ListRiderInventory(ctx context.Context, riderID string) ([]*RiderInventory, error)
}

type service struct {
	repo      Repository
	publisher events.Publisher
}

// NewService creates a new inventory service.
func NewService(repo Repository, publisher events.Publisher) Service {
	return &service{repo: repo, publisher: publisher}
}

func (s *service) Distribute(ctx context.Context, req DistributeRequest) (*Distribution, error) {
	riderID, err := uuid.Parse(req.RiderID)
	if err != nil {
		return nil, fmt.Errorf("invalid rider_id: %w", err)
	}
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("invalid product_id: %w", err)
	}
	distributedBy, err := uuid.Parse(req.DistributedBy)
	if err != nil {
		return nil, fmt.Errorf("invalid distributed_by: %w", err)
	}
	if req.Quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1")
	}

	d := &Distribution{
		ID:            uuid.New(),
		RiderID:       riderID,
		ProductID:     productID,
		Quantity:      req.Quantity,
		DistributedBy: distributedBy,
	}
	if err := s.repo.CreateDistribution(ctx, d); err != nil {
		return nil, fmt.Errorf("failed to persist distribution: %w", err)
	}

	if err := s.publisher.Publish(ctx, events.Event{
		EventID:   uuid.NewString(),
		Type:      events.TypeInventoryAdjusted,
		RiderID:   req.RiderID,
		CreatedAt: time.Now().UTC(),
		Payload: map[string]any{
			"product_id": req.ProductID,
			"delta":      req.Quantity,
			"source":     "distribution",
		},
	}); err != nil {
		log.Printf("inventory: publish event failed: %v", err)
	}
	return d, nil
}

func (s *service) ListDistributions(ctx context.Context, riderID string) ([]*Distribution, error) {
	return s.repo.ListDistributions(ctx, riderID)
}

func (s *service) ListRiderInventory(ctx context.Context, riderID string) ([]*RiderInventory, error) {
	return s.repo.ListRiderInventory(ctx, riderID)
}
