// Package user implements the principal repository using PostgreSQL.
// A user's role set lives in the user_roles table; the repository loads
// and mutates it alongside the user row. Role and user writes issued
// inside a TxManager transaction share that transaction.
package user

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/textcomm/textcomm-server/internal/adapter/postgres"
	"github.com/textcomm/textcomm-server/internal/domain"
)

// psql builds queries with PostgreSQL ($1, $2, …) placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const userColumns = "id, email, display_name, first_name, last_name, phone, avatar_path, created_at, updated_at"

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a user with their role set by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	u, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	if u.Roles, err = r.rolesFor(ctx, q, u.ID); err != nil {
		return nil, err
	}
	return u, nil
}

// GetByEmail returns a user with their role set by email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	u, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}

	if u.Roles, err = r.rolesFor(ctx, q, u.ID); err != nil {
		return nil, err
	}
	return u, nil
}

// GetByIDForUpdate returns a user like GetByID but takes a row lock
// (SELECT … FOR UPDATE), serializing concurrent role toggles on the same
// user. Only meaningful inside a transaction.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1 FOR UPDATE`, id)
	u, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	if u.Roles, err = r.rolesFor(ctx, q, u.ID); err != nil {
		return nil, err
	}
	return u, nil
}

// ListAll returns all users ordered by email, with role sets loaded.
// Used by the admin user directory.
func (r *Repo) ListAll(ctx context.Context) ([]*domain.User, error) {
	return r.list(ctx, psql.Select(userColumns).From("users").OrderBy("email ASC"))
}

// ListExcept returns all users except the given one, ordered by display
// name. This is the conversation-partner listing.
func (r *Repo) ListExcept(ctx context.Context, id uuid.UUID) ([]*domain.User, error) {
	return r.list(ctx, psql.Select(userColumns).
		From("users").
		Where(sq.NotEq{"id": id}).
		OrderBy("display_name ASC, email ASC"))
}

func (r *Repo) list(ctx context.Context, query sq.SelectBuilder) ([]*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list users: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	for _, u := range users {
		if u.Roles, err = r.rolesFor(ctx, q, u.ID); err != nil {
			return nil, err
		}
	}
	return users, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new user together with their initial role set.
// Returns domain.ErrAlreadyExists if the email is taken.
func (r *Repo) Create(ctx context.Context, u *domain.User) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx,
		`INSERT INTO users (id, email, display_name, first_name, last_name, phone, avatar_path, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		u.ID, u.Email, u.DisplayName, u.FirstName, u.LastName, u.Phone, u.AvatarPath, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "user", u.ID)
	}

	for _, role := range u.Roles {
		if err := r.AddRole(ctx, u.ID, role); err != nil {
			return err
		}
	}
	return nil
}

// UpdateProfile modifies the editable profile fields.
func (r *Repo) UpdateProfile(ctx context.Context, id uuid.UUID, firstName, lastName, phone, avatarPath *string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	update := psql.Update("users").
		Set("first_name", firstName).
		Set("last_name", lastName).
		Set("phone", phone).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id})
	if avatarPath != nil {
		update = update.Set("avatar_path", *avatarPath)
	}

	sql, args, err := update.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update user: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}

	return r.GetByID(ctx, id)
}

// Delete removes the user row itself. Dependent rows (roles, credentials,
// messages, memberships) are removed by the caller inside the same
// transaction before this is called.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Role operations
// ---------------------------------------------------------------------------

// AddRole grants a role. Granting an already-held role is a no-op.
func (r *Repo) AddRole(ctx context.Context, userID uuid.UUID, role domain.Role) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx,
		`INSERT INTO user_roles (user_id, role) VALUES ($1, $2)
		 ON CONFLICT (user_id, role) DO NOTHING`,
		userID, role.String(),
	)
	if err != nil {
		return postgres.MapError(err, "user_role", userID)
	}
	return nil
}

// RemoveRole revokes a role. Revoking an absent role is a no-op.
func (r *Repo) RemoveRole(ctx context.Context, userID uuid.UUID, role domain.Role) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx,
		`DELETE FROM user_roles WHERE user_id = $1 AND role = $2`,
		userID, role.String(),
	)
	if err != nil {
		return postgres.MapError(err, "user_role", userID)
	}
	return nil
}

// DeleteRoles removes the whole role set for a user (cascade on delete).
func (r *Repo) DeleteRoles(ctx context.Context, userID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, `DELETE FROM user_roles WHERE user_id = $1`, userID); err != nil {
		return postgres.MapError(err, "user_role", userID)
	}
	return nil
}

func (r *Repo) rolesFor(ctx context.Context, q postgres.Querier, userID uuid.UUID) (domain.RoleSet, error) {
	rows, err := q.Query(ctx, `SELECT role FROM user_roles WHERE user_id = $1 ORDER BY role`, userID)
	if err != nil {
		return nil, fmt.Errorf("load roles for %s: %w", userID, err)
	}
	defer rows.Close()

	var roles domain.RoleSet
	for rows.Next() {
		var role string
		if err := rows.Scan(&role); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		roles = append(roles, domain.Role(role))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load roles for %s: %w", userID, err)
	}
	return roles, nil
}

// scanUser scans one user row from either pgx.Row or pgx.Rows.
func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.Email, &u.DisplayName,
		&u.FirstName, &u.LastName, &u.Phone, &u.AvatarPath,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
