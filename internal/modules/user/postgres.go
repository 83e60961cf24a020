package user

import (
	"context"
	"database/sql"
	"time"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a Postgres-backed profile repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) CreateProfile(ctx context.Context, p *Profile) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO profiles (id, email, full_name, role, password_hash)
		VALUES ($1,$2,$3,$4,$5)`,
		p.ID, p.Email, p.FullName, p.Role, p.PasswordHash)
	return err
}

func (r *postgresRepo) GetProfileByID(ctx context.Context, id string) (*Profile, error) {
	return r.scan(r.db.QueryRowContext(ctx, `
		SELECT id, email, full_name, role, password_hash, created_at, updated_at
		FROM profiles WHERE id=$1`, id))
}

func (r *postgresRepo) GetProfileByEmail(ctx context.Context, email string) (*Profile, error) {
	return r.scan(r.db.QueryRowContext(ctx, `
		SELECT id, email, full_name, role, password_hash, created_at, updated_at
		FROM profiles WHERE email=$1`, email))
}

func (r *postgresRepo) ListRiders(ctx context.Context) ([]*Profile, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, email, full_name, role, password_hash, created_at, updated_at
		FROM profiles WHERE role=$1 ORDER BY full_name ASC`, RoleRider)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var profiles []*Profile
	for rows.Next() {
		p, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

func (r *postgresRepo) UpdateRole(ctx context.Context, id string, role Role) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE profiles SET role=$1, updated_at=$2 WHERE id=$3`,
		role, time.Now(), id)
	return err
}

// ── scanner ───────────────────────────────────────────────────────────────────

type rowScanner interface{ Scan(dest ...interface{}) error }

func (r *postgresRepo) scan(row rowScanner) (*Profile, error) {
	p := &Profile{}
	err := row.Scan(&p.ID, &p.Email, &p.FullName, &p.Role, &p.PasswordHash,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}
