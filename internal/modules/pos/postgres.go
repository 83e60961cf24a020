package pos

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a Postgres-backed POS repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) ListRiderStock(ctx context.Context, riderID string) ([]RiderStock, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT ri.product_id, p.name, p.sku, p.price, ri.quantity
		FROM rider_inventory ri
		JOIN products p ON p.id = ri.product_id
		WHERE ri.rider_id=$1 AND p.is_active=TRUE`, riderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var stock []RiderStock
	for rows.Next() {
		var s RiderStock
		if err := rows.Scan(&s.ProductID, &s.ProductName, &s.ProductSKU, &s.Price, &s.Quantity); err != nil {
			return nil, err
		}
		stock = append(stock, s)
	}
	return stock, rows.Err()
}

// CreateTransaction writes the header, items, and inventory decrements inside
// one database transaction. The decrement carries a quantity >= n guard, so
// concurrent checkouts for the same rider serialize on the row and the loser
// rolls back with an InsufficientStockError instead of driving stock negative.
func (r *postgresRepo) CreateTransaction(ctx context.Context, t *Transaction) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO transactions
		  (id, transaction_number, rider_id, total_amount, tax_amount, final_amount,
		   payment_method, currency)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		t.ID, t.TransactionNumber, t.RiderID, t.TotalAmount, t.TaxAmount, t.FinalAmount,
		t.PaymentMethod, t.Currency)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateTransactionNumber
		}
		return fmt.Errorf("insert transaction: %w", err)
	}

	for _, item := range t.Items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO transaction_items
			  (id, transaction_id, product_id, product_name, product_sku,
			   price_at_time, quantity, subtotal)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
			item.ID, t.ID, item.ProductID, item.ProductName, item.ProductSKU,
			item.PriceAtTime, item.Quantity, item.Subtotal)
		if err != nil {
			return fmt.Errorf("insert transaction_item: %w", err)
		}

		result, err := tx.ExecContext(ctx, `
			UPDATE rider_inventory
			SET quantity = quantity - $1, updated_at = now()
			WHERE rider_id = $2 AND product_id = $3 AND quantity >= $1`,
			item.Quantity, t.RiderID, item.ProductID)
		if err != nil {
			return fmt.Errorf("decrement rider inventory: %w", err)
		}
		if rows, _ := result.RowsAffected(); rows == 0 {
			var available int
			if err := tx.QueryRowContext(ctx, `
				SELECT COALESCE(quantity, 0) FROM rider_inventory
				WHERE rider_id=$1 AND product_id=$2`,
				t.RiderID, item.ProductID).Scan(&available); err != nil && !errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("read rider inventory: %w", err)
			}
			return &InsufficientStockError{
				ProductID:   item.ProductID.String(),
				ProductName: item.ProductName,
				Requested:   item.Quantity,
				Available:   available,
			}
		}
	}

	return tx.Commit()
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*Transaction, error) {
	t, err := r.scan(r.db.QueryRowContext(ctx, `
		SELECT id, transaction_number, rider_id, total_amount, tax_amount, final_amount,
		       payment_method, currency, created_at
		FROM transactions WHERE id=$1`, id))
	if err != nil {
		return nil, err
	}
	t.Items, err = r.listItems(ctx, t.ID.String())
	return t, err
}

func (r *postgresRepo) GetByNumber(ctx context.Context, number string) (*Transaction, error) {
	t, err := r.scan(r.db.QueryRowContext(ctx, `
		SELECT id, transaction_number, rider_id, total_amount, tax_amount, final_amount,
		       payment_method, currency, created_at
		FROM transactions WHERE transaction_number=$1`, number))
	if err != nil {
		return nil, err
	}
	t.Items, err = r.listItems(ctx, t.ID.String())
	return t, err
}

func (r *postgresRepo) ListByRider(ctx context.Context, riderID string) ([]*Transaction, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, transaction_number, rider_id, total_amount, tax_amount, final_amount,
		       payment_method, currency, created_at
		FROM transactions WHERE rider_id=$1 ORDER BY created_at DESC`, riderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var txs []*Transaction
	for rows.Next() {
		t, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		txs = append(txs, t)
	}
	return txs, rows.Err()
}

// ── helpers ───────────────────────────────────────────────────────────────────

type rowScanner interface{ Scan(dest ...interface{}) error }

func (r *postgresRepo) scan(row rowScanner) (*Transaction, error) {
	t := &Transaction{}
	err := row.Scan(&t.ID, &t.TransactionNumber, &t.RiderID,
		&t.TotalAmount, &t.TaxAmount, &t.FinalAmount,
		&t.PaymentMethod, &t.Currency, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *postgresRepo) listItems(ctx context.Context, transactionID string) ([]*TransactionItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, transaction_id, product_id, product_name, product_sku,
		       price_at_time, quantity, subtotal
		FROM transaction_items WHERE transaction_id=$1`, transactionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*TransactionItem
	for rows.Next() {
		item := &TransactionItem{}
		if err := rows.Scan(&item.ID, &item.TransactionID, &item.ProductID,
			&item.ProductName, &item.ProductSKU,
			&item.PriceAtTime, &item.Quantity, &item.Subtotal); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation"
}
