package tax

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a Postgres-backed tax policy repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, p *Policy) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO tax_policies (id, name, rate, is_active)
		VALUES ($1,$2,$3,$4)`,
		p.ID, p.Name, p.Rate, p.IsActive)
	return err
}

func (r *postgresRepo) List(ctx context.Context) ([]*Policy, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, rate, is_active, created_at, updated_at
		FROM tax_policies ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var policies []*Policy
	for rows.Next() {
		p := &Policy{}
		if err := rows.Scan(&p.ID, &p.Name, &p.Rate, &p.IsActive, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		policies = append(policies, p)
	}
	return policies, rows.Err()
}

func (r *postgresRepo) GetActive(ctx context.Context) (*Policy, error) {
	p := &Policy{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, rate, is_active, created_at, updated_at
		FROM tax_policies WHERE is_active=TRUE LIMIT 1`).
		Scan(&p.ID, &p.Name, &p.Rate, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *postgresRepo) SetActive(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `UPDATE tax_policies SET is_active=FALSE, updated_at=now() WHERE is_active=TRUE`); err != nil {
		return fmt.Errorf("deactivate policies: %w", err)
	}
	result, err := tx.ExecContext(ctx, `UPDATE tax_policies SET is_active=TRUE, updated_at=now() WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("activate policy: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return fmt.Errorf("tax policy %s not found", id)
	}

	return tx.Commit()
}
