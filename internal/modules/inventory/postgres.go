package inventory

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a Postgres-backed inventory repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

// CreateDistribution appends the distribution record and bumps the rider's
// inventory row in one transaction so the ledger and the record never diverge.
func (r *postgresRepo) CreateDistribution(ctx context.Context, d *Distribution) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO distributions (id, rider_id, product_id, quantity, distributed_by)
		VALUES ($1,$2,$3,$4,$5)`,
		d.ID, d.RiderID, d.ProductID, d.Quantity, d.DistributedBy)
	if err != nil {
		return fmt.Errorf("insert distribution: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO rider_inventory (id, rider_id, product_id, quantity)
		VALUES ($1,$2,$3,$4)
		ON CONFLICT (rider_id, product_id)
		DO UPDATE SET quantity = rider_inventory.quantity + EXCLUDED.quantity, updated_at = now()`,
		uuid.New(), d.RiderID, d.ProductID, d.Quantity)
	if err != nil {
		return fmt.Errorf("increment rider inventory: %w", err)
	}

	return tx.Commit()
}

func (r *postgresRepo) ListDistributions(ctx context.Context, riderID string) ([]*Distribution, error) {
	query := `SELECT id, rider_id, product_id, quantity, distributed_by, created_at
	          FROM distributions`
	args := []interface{}{}
	if riderID != "" {
		query += ` WHERE rider_id=$1`
		args = append(args, riderID)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var dists []*Distribution
	for rows.Next() {
		d := &Distribution{}
		if err := rows.Scan(&d.ID, &d.RiderID, &d.ProductID, &d.Quantity, &d.DistributedBy, &d.CreatedAt); err != nil {
			return nil, err
		}
		dists = append(dists, d)
	}
	return dists, rows.Err()
}

func (r *postgresRepo) ListRiderInventory(ctx context.Context, riderID string) ([]*RiderInventory, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT ri.id, ri.rider_id, ri.product_id, ri.quantity, ri.updated_at,
		       p.name, p.sku, p.price
		FROM rider_inventory ri
		JOIN products p ON p.id = ri.product_id
		WHERE ri.rider_id=$1
		ORDER BY p.name ASC`, riderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*RiderInventory
	for rows.Next() {
		ri := &RiderInventory{}
		if err := rows.Scan(&ri.ID, &ri.RiderID, &ri.ProductID, &ri.Quantity, &ri.UpdatedAt,
			&ri.ProductName, &ri.ProductSKU, &ri.Price); err != nil {
			return nil, err
		}
		items = append(items, ri)
	}
	return items, rows.Err()
}

func (r *postgresRepo) GetRiderInventory(ctx context.Context, riderID, productID string) (*RiderInventory, error) {
	ri := &RiderInventory{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, rider_id, product_id, quantity, updated_at
		FROM rider_inventory WHERE rider_id=$1 AND product_id=$2`, riderID, productID).
		Scan(&ri.ID, &ri.RiderID, &ri.ProductID, &ri.Quantity, &ri.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return ri, nil
}
