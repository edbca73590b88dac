// Package directmessage implements one-to-one message persistence using
// PostgreSQL. A thread between two users is the union of messages sent in
// either direction, ordered by creation time with the insertion sequence
// as tiebreaker so same-timestamp messages keep a stable order.
package directmessage

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/textcomm/textcomm-server/internal/adapter/postgres"
	"github.com/textcomm/textcomm-server/internal/domain"
)

// Repo provides direct message persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new direct message repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a message. Seq is assigned by the database and written
// back into msg.
func (r *Repo) Create(ctx context.Context, msg *domain.DirectMessage) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	err := q.QueryRow(ctx,
		`INSERT INTO direct_messages (id, sender_id, recipient_id, content, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING seq`,
		msg.ID, msg.SenderID, msg.RecipientID, msg.Content, msg.CreatedAt,
	).Scan(&msg.Seq)
	if err != nil {
		return postgres.MapError(err, "direct_message", msg.ID)
	}
	return nil
}

// ListBetween returns the full thread between two users, both directions,
// oldest first.
func (r *Repo) ListBetween(ctx context.Context, a, b uuid.UUID) ([]domain.DirectMessage, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		`SELECT id, sender_id, recipient_id, content, created_at, seq
		 FROM direct_messages
		 WHERE (sender_id = $1 AND recipient_id = $2)
		    OR (sender_id = $2 AND recipient_id = $1)
		 ORDER BY created_at ASC, seq ASC`,
		a, b,
	)
	if err != nil {
		return nil, fmt.Errorf("list direct messages: %w", err)
	}
	defer rows.Close()

	var msgs []domain.DirectMessage
	for rows.Next() {
		var m domain.DirectMessage
		if err := rows.Scan(&m.ID, &m.SenderID, &m.RecipientID, &m.Content, &m.CreatedAt, &m.Seq); err != nil {
			return nil, fmt.Errorf("scan direct message: %w", err)
		}
		msgs = append(msgs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list direct messages: %w", err)
	}
	return msgs, nil
}

// DeleteByUser removes every message the user sent or received. Used by
// the account deletion cascade.
func (r *Repo) DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`DELETE FROM direct_messages WHERE sender_id = $1 OR recipient_id = $1`,
		userID,
	)
	if err != nil {
		return 0, postgres.MapError(err, "direct_message", userID)
	}
	return tag.RowsAffected(), nil
}
