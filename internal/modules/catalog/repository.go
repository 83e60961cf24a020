package catalog

import "context"

// CategoryRepository defines data access for product categories.
type CategoryRepository interface {
	CreateCategory(ctx context.Context, c *Category) error
	ListCategories(ctx context.Context) ([]*Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

// ProductRepository defines data access for catalog products.
type ProductRepository interface {
	CreateProduct(ctx context.Context, p *Product) error
	GetProductByID(ctx context.Context, id string) (*Product, error)
	GetProductBySKU(ctx context.Context, sku string) (*Product, error)
	ListProducts(ctx context.Context, categoryID string, activeOnly bool) ([]*Product, error)
	UpdateProduct(ctx context.Context, p *Product) error
}
