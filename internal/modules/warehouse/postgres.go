package warehouse

import (
	"context"
	"database/sql"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a Postgres-backed warehouse repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) UpsertStock(ctx context.Context, s *Stock) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO warehouse_stock (id, product_id, quantity, min_stock)
		VALUES ($1,$2,$3,$4)
		ON CONFLICT (product_id)
		DO UPDATE SET quantity=EXCLUDED.quantity, min_stock=EXCLUDED.min_stock, updated_at=now()`,
		s.ID, s.ProductID, s.Quantity, s.MinStock)
	return err
}

func (r *postgresRepo) GetStockByProduct(ctx context.Context, productID string) (*Stock, error) {
	s := &Stock{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, product_id, quantity, min_stock, updated_at
		FROM warehouse_stock WHERE product_id=$1`, productID).
		Scan(&s.ID, &s.ProductID, &s.Quantity, &s.MinStock, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *postgresRepo) ListStock(ctx context.Context) ([]*Stock, error) {
	return r.query(ctx, `
		SELECT id, product_id, quantity, min_stock, updated_at
		FROM warehouse_stock ORDER BY updated_at DESC`)
}

func (r *postgresRepo) ListBelowMinimum(ctx context.Context) ([]*Stock, error) {
	return r.query(ctx, `
		SELECT id, product_id, quantity, min_stock, updated_at
		FROM warehouse_stock WHERE quantity < min_stock ORDER BY quantity ASC`)
}

func (r *postgresRepo) query(ctx context.Context, query string, args ...interface{}) ([]*Stock, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var stocks []*Stock
	for rows.Next() {
		s := &Stock{}
		if err := rows.Scan(&s.ID, &s.ProductID, &s.Quantity, &s.MinStock, &s.UpdatedAt); err != nil {
			return nil, err
		}
		stocks = append(stocks, s)
	}
	return stocks, rows.Err()
}
