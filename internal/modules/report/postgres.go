package report

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a Postgres-backed report repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) ListTransactions(ctx context.Context, from, to time.Time, riderID string) ([]*Transaction, error) {
	query := `
		SELECT t.id, t.transaction_number, t.rider_id, COALESCE(pr.full_name, ''),
		       t.total_amount, t.tax_amount, t.final_amount, t.payment_method, t.created_at
		FROM transactions t
		LEFT JOIN profiles pr ON pr.id = t.rider_id
		WHERE t.created_at >= $1 AND t.created_at <= $2`
	args := []interface{}{from, to}
	if riderID != "" {
		args = append(args, riderID)
		query += ` AND t.rider_id = $3`
	}
	query += ` ORDER BY t.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txs []*Transaction
	byID := map[string]*Transaction{}
	var ids []string
	for rows.Next() {
		t := &Transaction{}
		if err := rows.Scan(&t.ID, &t.TransactionNumber, &t.RiderID, &t.RiderName,
			&t.TotalAmount, &t.TaxAmount, &t.FinalAmount, &t.PaymentMethod, &t.CreatedAt); err != nil {
			return nil, err
		}
		txs = append(txs, t)
		byID[t.ID.String()] = t
		ids = append(ids, t.ID.String())
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return txs, nil
	}

	itemRows, err := r.db.QueryContext(ctx, `
		SELECT transaction_id, product_id, product_name, product_sku, quantity, subtotal
		FROM transaction_items
		WHERE transaction_id = ANY($1::uuid[])
		ORDER BY transaction_id`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()
	for itemRows.Next() {
		var txID string
		item := &TransactionItem{}
		if err := itemRows.Scan(&txID, &item.ProductID, &item.ProductName,
			&item.ProductSKU, &item.Quantity, &item.Subtotal); err != nil {
			return nil, err
		}
		if t, ok := byID[txID]; ok {
			t.Items = append(t.Items, item)
		}
	}
	return txs, itemRows.Err()
}
