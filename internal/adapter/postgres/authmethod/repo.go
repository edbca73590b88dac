// Package authmethod implements password credential persistence using
// PostgreSQL. Credentials live apart from the users table so that
// directory listings never carry hash material.
package authmethod

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/textcomm/textcomm-server/internal/adapter/postgres"
	"github.com/textcomm/textcomm-server/internal/domain"
)

// Repo provides auth_methods persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new auth method repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts the password credential for a user.
func (r *Repo) Create(ctx context.Context, am *domain.AuthMethod) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx,
		`INSERT INTO auth_methods (user_id, password_hash, created_at) VALUES ($1, $2, $3)`,
		am.UserID, am.PasswordHash, am.CreatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "auth_method", am.UserID)
	}
	return nil
}

// GetByUser returns the password credential for a user.
func (r *Repo) GetByUser(ctx context.Context, userID uuid.UUID) (*domain.AuthMethod, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var am domain.AuthMethod
	err := q.QueryRow(ctx,
		`SELECT user_id, password_hash, created_at FROM auth_methods WHERE user_id = $1`,
		userID,
	).Scan(&am.UserID, &am.PasswordHash, &am.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "auth_method", userID)
	}
	return &am, nil
}

// DeleteByUser removes the credential row (account deletion cascade).
// Deleting an absent credential is a no-op.
func (r *Repo) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, `DELETE FROM auth_methods WHERE user_id = $1`, userID); err != nil {
		return postgres.MapError(err, "auth_method", userID)
	}
	return nil
}
