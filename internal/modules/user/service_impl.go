package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type service struct {
	repo Repository
}

// NewService creates a new user service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, email, password, fullName string) (*Profile, error) {
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	p := &Profile{
		ID:           uuid.New(),
		Email:        email,
		FullName:     fullName,
		Role:         RoleRider,
		PasswordHash: string(hashedPassword),
	}
	if err := s.repo.CreateProfile(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) GetProfile(ctx context.Context, id string) (*Profile, error) {
	return s.repo.GetProfileByID(ctx, id)
}

func (s *service) ListRiders(ctx context.Context) ([]*Profile, error) {
	return s.repo.ListRiders(ctx)
}

func (s *service) UpdateRole(ctx context.Context, id string, role string) (*Profile, error) {
	r := Role(strings.ToLower(role))
	if r != RoleAdmin && r != RoleRider {
		return nil, fmt.Errorf("invalid role: %s (allowed: admin, rider)", role)
	}
	if err := s.repo.UpdateRole(ctx, id, r); err != nil {
		return nil, err
	}
	return s.repo.GetProfileByID(ctx, id)
}
