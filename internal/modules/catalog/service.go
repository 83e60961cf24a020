package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Service defines catalog business logic.
type Service interface {
	CreateCategory(ctx context.Context, name, description string) (*Category, error)
	ListCategories(ctx context.Context) ([]*Category, error)
	DeleteCategory(ctx context.Context, id string) error

	CreateProduct(ctx context.Context, req CreateProductRequest) (*Product, error)
	GetProduct(ctx context.Context, id string) (*Product, error)
	GetProductBySKU(ctx context.Context, sku string) (*Product, error)
	ListProducts(ctx context.Context, categoryID string, activeOnly bool) ([]*Product, error)
	UpdateProduct(ctx context.Context, id string, req CreateProductRequest) (*Product, error)
}

// CreateProductRequest holds the data for creating or updating a product.
type CreateProductRequest struct {
	SKU        string  `json:"sku"`
	Name       string  `json:"name"`
	Cost       float64 `json:"cost"`
	Price      float64 `json:"price"`
	CategoryID string  `json:"category_id,omitempty"`
}

type service struct {
	categoryRepo CategoryRepository
	productRepo  ProductRepository
}

// NewService creates a new catalog service.
func NewService(categoryRepo CategoryRepository, productRepo ProductRepository) Service {
	return &service{categoryRepo: categoryRepo, productRepo: productRepo}
}

func (s *service) CreateCategory(ctx context.Context, name, description string) (*Category, error) {
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	c := &Category{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
	}
	if err := s.categoryRepo.CreateCategory(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) ListCategories(ctx context.Context) ([]*Category, error) {
	return s.categoryRepo.ListCategories(ctx)
}

func (s *service) DeleteCategory(ctx context.Context, id string) error {
	return s.categoryRepo.DeleteCategory(ctx, id)
}

func (s *service) CreateProduct(ctx context.Context, req CreateProductRequest) (*Product, error) {
	if req.SKU == "" {
		return nil, fmt.Errorf("sku is required")
	}
	if req.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if req.Cost < 0 || req.Price < 0 {
		return nil, fmt.Errorf("cost and price must not be negative")
	}
	p := &Product{
		ID:       uuid.New(),
		SKU:      req.SKU,
		Name:     req.Name,
		Cost:     req.Cost,
		Price:    req.Price,
		IsActive: true,
	}
	if req.CategoryID != "" {
		cid, err := uuid.Parse(req.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("invalid category_id: %w", err)
		}
		p.CategoryID = &cid
	}
	if err := s.productRepo.CreateProduct(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) GetProduct(ctx context.Context, id string) (*Product, error) {
	return s.productRepo.GetProductByID(ctx, id)
}

func (s *service) GetProductBySKU(ctx context.Context, sku string) (*Product, error) {
	return s.productRepo.GetProductBySKU(ctx, sku)
}

func (s *service) ListProducts(ctx context.Context, categoryID string, activeOnly bool) ([]*Product, error) {
	return s.productRepo.ListProducts(ctx, categoryID, activeOnly)
}

func (s *service) UpdateProduct(ctx context.Context, id string, req CreateProductRequest) (*Product, error) {
	p, err := s.productRepo.GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Cost < 0 || req.Price < 0 {
		return nil, fmt.Errorf("cost and price must not be negative")
	}
	if req.SKU != "" {
		p.SKU = req.SKU
	}
	if req.Name != "" {
		p.Name = req.Name
	}
	p.Cost = req.Cost
	p.Price = req.Price
	if req.CategoryID != "" {
		cid, err := uuid.Parse(req.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("invalid category_id: %w", err)
		}
		p.CategoryID = &cid
	}
	if err := s.productRepo.UpdateProduct(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
