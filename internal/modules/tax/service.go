package tax

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Service defines tax policy business logic.
type Service interface {
	CreatePolicy(ctx context.Context, req CreatePolicyRequest) (*Policy, error)
	ListPolicies(ctx context.Context) ([]*Policy, error)
	GetActivePolicy(ctx context.Context) (*Policy, error)
	ActivatePolicy(ctx context.Context, id string) error
}

type service struct{ repo Repository }

// NewService creates a new tax service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) CreatePolicy(ctx context.Context, req CreatePolicyRequest) (*Policy, error) {
	p := &Policy{
		ID:   uuid.New(),
		Name: req.Name,
		Rate: req.Rate,
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%w: name %q, rate %.2f", err, req.Name, req.Rate)
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) ListPolicies(ctx context.Context) ([]*Policy, error) {
	return s.repo.List(ctx)
}

func (s *service) GetActivePolicy(ctx context.Context) (*Policy, error) {
	return s.repo.GetActive(ctx)
}

func (s *service) ActivatePolicy(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("invalid policy id: %w", err)
	}
	return s.repo.SetActive(ctx, id)
}
