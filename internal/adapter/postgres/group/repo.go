// Package group implements group, membership and group message persistence
// using PostgreSQL. The (group_id, user_id) unique constraint on
// group_members is the final arbiter of membership uniqueness; AddMember
// absorbs conflicts with ON CONFLICT DO NOTHING so a lost race inside a
// transaction does not abort it.
package group

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/textcomm/textcomm-server/internal/adapter/postgres"
	"github.com/textcomm/textcomm-server/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides group persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new group repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Groups
// ---------------------------------------------------------------------------

// Create inserts a new group.
func (r *Repo) Create(ctx context.Context, g *domain.Group) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx,
		`INSERT INTO groups (id, name, created_at) VALUES ($1, $2, $3)`,
		g.ID, g.Name, g.CreatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "group", g.ID)
	}
	return nil
}

// GetByID returns a group by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Group, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var g domain.Group
	err := q.QueryRow(ctx,
		`SELECT id, name, created_at FROM groups WHERE id = $1`, id,
	).Scan(&g.ID, &g.Name, &g.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "group", id)
	}
	return &g, nil
}

// Delete removes the group row itself. Memberships and messages are
// removed by the caller inside the same transaction before this is called.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM groups WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "group", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("group %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ListAll returns every group ordered by name. Admin view.
func (r *Repo) ListAll(ctx context.Context) ([]domain.Group, error) {
	return r.listGroups(ctx, psql.Select("id", "name", "created_at").
		From("groups").
		OrderBy("name ASC"))
}

// ListForUser returns the groups the user belongs to, ordered by name.
func (r *Repo) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.Group, error) {
	return r.listGroups(ctx, psql.Select("g.id", "g.name", "g.created_at").
		From("groups g").
		Join("group_members m ON m.group_id = g.id").
		Where(sq.Eq{"m.user_id": userID}).
		OrderBy("g.name ASC"))
}

func (r *Repo) listGroups(ctx context.Context, query sq.SelectBuilder) ([]domain.Group, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list groups: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	defer rows.Close()

	var groups []domain.Group
	for rows.Next() {
		var g domain.Group
		if err := rows.Scan(&g.ID, &g.Name, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan group: %w", err)
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	return groups, nil
}

// ---------------------------------------------------------------------------
// Memberships
// ---------------------------------------------------------------------------

// AddMember inserts a membership. Returns false without error when the
// user is already a member, including when a concurrent insert won the
// race: the unique constraint makes the second insert a no-op rather
// than a failure.
func (r *Repo) AddMember(ctx context.Context, m *domain.GroupMembership) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`INSERT INTO group_members (id, group_id, user_id)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (group_id, user_id) DO NOTHING`,
		m.ID, m.GroupID, m.UserID,
	)
	if err != nil {
		return false, postgres.MapError(err, "group_member", m.ID)
	}
	return tag.RowsAffected() > 0, nil
}

// RemoveMember deletes a membership by its id, scoped to the group so a
// membership id from another group cannot be used. Returns false when no
// row matched.
func (r *Repo) RemoveMember(ctx context.Context, membershipID, groupID uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`DELETE FROM group_members WHERE id = $1 AND group_id = $2`,
		membershipID, groupID,
	)
	if err != nil {
		return false, postgres.MapError(err, "group_member", membershipID)
	}
	return tag.RowsAffected() > 0, nil
}

// RemoveMembersByGroup deletes all memberships of a group (group deletion
// cascade).
func (r *Repo) RemoveMembersByGroup(ctx context.Context, groupID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, `DELETE FROM group_members WHERE group_id = $1`, groupID); err != nil {
		return postgres.MapError(err, "group_member", groupID)
	}
	return nil
}

// RemoveMembersByUser deletes all memberships of a user (account deletion
// cascade).
func (r *Repo) RemoveMembersByUser(ctx context.Context, userID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, `DELETE FROM group_members WHERE user_id = $1`, userID); err != nil {
		return postgres.MapError(err, "group_member", userID)
	}
	return nil
}

// MemberExists reports whether the user belongs to the group. Satisfies
// authz.MembershipLookup.
func (r *Repo) MemberExists(ctx context.Context, groupID, userID uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM group_members WHERE group_id = $1 AND user_id = $2)`,
		groupID, userID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check membership: %w", err)
	}
	return exists, nil
}

// ListMembers returns the group's roster joined with user emails, ordered
// by email.
func (r *Repo) ListMembers(ctx context.Context, groupID uuid.UUID) ([]domain.GroupMemberRow, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		`SELECT m.id, m.user_id, u.email
		 FROM group_members m
		 JOIN users u ON u.id = m.user_id
		 WHERE m.group_id = $1
		 ORDER BY u.email ASC`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("list group members: %w", err)
	}
	defer rows.Close()

	var members []domain.GroupMemberRow
	for rows.Next() {
		var m domain.GroupMemberRow
		if err := rows.Scan(&m.MembershipID, &m.UserID, &m.Email); err != nil {
			return nil, fmt.Errorf("scan group member: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list group members: %w", err)
	}
	return members, nil
}

// ---------------------------------------------------------------------------
// Messages
// ---------------------------------------------------------------------------

// CreateMessage inserts a group message. Seq is assigned by the database
// and written back into msg.
func (r *Repo) CreateMessage(ctx context.Context, msg *domain.GroupMessage) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	err := q.QueryRow(ctx,
		`INSERT INTO group_messages (id, group_id, sender_id, content, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING seq`,
		msg.ID, msg.GroupID, msg.SenderID, msg.Content, msg.CreatedAt,
	).Scan(&msg.Seq)
	if err != nil {
		return postgres.MapError(err, "group_message", msg.ID)
	}
	return nil
}

// ListMessages returns the group's messages oldest first, each joined with
// the sender's display name.
func (r *Repo) ListMessages(ctx context.Context, groupID uuid.UUID) ([]domain.GroupMessageView, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		`SELECT gm.id, gm.group_id, gm.sender_id, gm.content, gm.created_at, gm.seq, u.display_name
		 FROM group_messages gm
		 JOIN users u ON u.id = gm.sender_id
		 WHERE gm.group_id = $1
		 ORDER BY gm.created_at ASC, gm.seq ASC`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("list group messages: %w", err)
	}
	defer rows.Close()

	var msgs []domain.GroupMessageView
	for rows.Next() {
		var v domain.GroupMessageView
		err := rows.Scan(&v.ID, &v.GroupID, &v.SenderID, &v.Content, &v.CreatedAt, &v.Seq, &v.SenderName)
		if err != nil {
			return nil, fmt.Errorf("scan group message: %w", err)
		}
		msgs = append(msgs, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list group messages: %w", err)
	}
	return msgs, nil
}

// DeleteMessagesByGroup deletes all of a group's messages (group deletion
// cascade).
func (r *Repo) DeleteMessagesByGroup(ctx context.Context, groupID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, `DELETE FROM group_messages WHERE group_id = $1`, groupID); err != nil {
		return postgres.MapError(err, "group_message", groupID)
	}
	return nil
}

// DeleteMessagesBySender deletes all messages a user posted to any group
// (account deletion cascade).
func (r *Repo) DeleteMessagesBySender(ctx context.Context, userID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, `DELETE FROM group_messages WHERE sender_id = $1`, userID); err != nil {
		return postgres.MapError(err, "group_message", userID)
	}
	return nil
}
