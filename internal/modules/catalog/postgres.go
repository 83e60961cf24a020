package catalog

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type categoryPostgresRepo struct{ db *sql.DB }

// NewCategoryPostgresRepository creates a Postgres-backed category repository.
func NewCategoryPostgresRepository(db *sql.DB) CategoryRepository {
	return &categoryPostgresRepo{db: db}
}

func (r *categoryPostgresRepo) CreateCategory(ctx context.Context, c *Category) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO categories (id, name, description)
		VALUES ($1,$2,$3)`,
		c.ID, c.Name, c.Description)
	return err
}

func (r *categoryPostgresRepo) ListCategories(ctx context.Context) ([]*Category, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, description, created_at, updated_at
		FROM categories ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var cats []*Category
	for rows.Next() {
		c := &Category{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

func (r *categoryPostgresRepo) DeleteCategory(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id=$1`, id)
	return err
}

type productPostgresRepo struct{ db *sql.DB }

// NewProductPostgresRepository creates a Postgres-backed product repository.
func NewProductPostgresRepository(db *sql.DB) ProductRepository {
	return &productPostgresRepo{db: db}
}

func (r *productPostgresRepo) CreateProduct(ctx context.Context, p *Product) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO products (id, sku, name, cost, price, category_id, is_active)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		p.ID, p.SKU, p.Name, p.Cost, p.Price, p.CategoryID, p.IsActive)
	return err
}

func (r *productPostgresRepo) GetProductByID(ctx context.Context, id string) (*Product, error) {
	return r.scan(r.db.QueryRowContext(ctx, `
		SELECT id, sku, name, cost, price, category_id, is_active, created_at, updated_at
		FROM products WHERE id=$1`, id))
}

func (r *productPostgresRepo) GetProductBySKU(ctx context.Context, sku string) (*Product, error) {
	return r.scan(r.db.QueryRowContext(ctx, `
		SELECT id, sku, name, cost, price, category_id, is_active, created_at, updated_at
		FROM products WHERE sku=$1`, sku))
}

func (r *productPostgresRepo) ListProducts(ctx context.Context, categoryID string, activeOnly bool) ([]*Product, error) {
	query := `SELECT id, sku, name, cost, price, category_id, is_active, created_at, updated_at
	          FROM products WHERE 1=1`
	args := []interface{}{}
	if categoryID != "" {
		args = append(args, categoryID)
		query += ` AND category_id=$1`
	}
	if activeOnly {
		query += ` AND is_active=TRUE`
	}
	query += ` ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var products []*Product
	for rows.Next() {
		p, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *productPostgresRepo) UpdateProduct(ctx context.Context, p *Product) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET sku=$1, name=$2, cost=$3, price=$4, category_id=$5, is_active=$6, updated_at=$7
		WHERE id=$8`,
		p.SKU, p.Name, p.Cost, p.Price, p.CategoryID, p.IsActive, time.Now(), p.ID)
	return err
}

// ── scanner ───────────────────────────────────────────────────────────────────

type rowScanner interface{ Scan(dest ...interface{}) error }

func (r *productPostgresRepo) scan(row rowScanner) (*Product, error) {
	p := &Product{}
	var categoryID sql.NullString
	err := row.Scan(&p.ID, &p.SKU, &p.Name, &p.Cost, &p.Price,
		&categoryID, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if categoryID.Valid {
		cid, _ := uuid.Parse(categoryID.String)
		p.CategoryID = &cid
	}
	return p, nil
}
