package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/textcomm/textcomm-server/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user holding only the User role.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return seedUser(t, pool, domain.RoleSet{domain.RoleUser})
}

// SeedAdmin creates a user holding both the User and Admin roles.
func SeedAdmin(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return seedUser(t, pool, domain.RoleSet{domain.RoleUser, domain.RoleAdmin})
}

func seedUser(t *testing.T, pool *pgxpool.Pool, roles domain.RoleSet) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:          uuid.New(),
		Email:       "testuser-" + suffix + "@example.com",
		DisplayName: "Test User " + suffix,
		Roles:       roles,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, display_name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Email, user.DisplayName, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	for _, role := range roles {
		_, err := pool.Exec(ctx,
			`INSERT INTO user_roles (user_id, role) VALUES ($1, $2)`,
			user.ID, role.String(),
		)
		if err != nil {
			t.Fatalf("testhelper: SeedUser insert role %s: %v", role, err)
		}
	}

	return user
}

// SeedGroup creates a group with a unique name.
func SeedGroup(t *testing.T, pool *pgxpool.Pool) domain.Group {
	t.Helper()
	ctx := context.Background()

	g := domain.Group{
		ID:        uuid.New(),
		Name:      "Test Group " + uniqueSuffix(),
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO groups (id, name, created_at) VALUES ($1, $2, $3)`,
		g.ID, g.Name, g.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedGroup insert group: %v", err)
	}
	return g
}

// SeedMembership adds a user to a group directly.
func SeedMembership(t *testing.T, pool *pgxpool.Pool, groupID, userID uuid.UUID) domain.GroupMembership {
	t.Helper()
	ctx := context.Background()

	m := domain.GroupMembership{
		ID:      uuid.New(),
		GroupID: groupID,
		UserID:  userID,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO group_members (id, group_id, user_id) VALUES ($1, $2, $3)`,
		m.ID, m.GroupID, m.UserID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMembership insert: %v", err)
	}
	return m
}

// SeedDirectMessage inserts a direct message between two users.
func SeedDirectMessage(t *testing.T, pool *pgxpool.Pool, senderID, recipientID uuid.UUID, content string) domain.DirectMessage {
	t.Helper()
	ctx := context.Background()

	m := domain.DirectMessage{
		ID:          uuid.New(),
		SenderID:    senderID,
		RecipientID: recipientID,
		Content:     content,
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO direct_messages (id, sender_id, recipient_id, content, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING seq`,
		m.ID, m.SenderID, m.RecipientID, m.Content, m.CreatedAt,
	).Scan(&m.Seq)
	if err != nil {
		t.Fatalf("testhelper: SeedDirectMessage insert: %v", err)
	}
	return m
}

// SeedGroupMessage inserts a message posted to a group.
func SeedGroupMessage(t *testing.T, pool *pgxpool.Pool, groupID, senderID uuid.UUID, content string) domain.GroupMessage {
	t.Helper()
	ctx := context.Background()

	m := domain.GroupMessage{
		ID:        uuid.New(),
		GroupID:   groupID,
		SenderID:  senderID,
		Content:   content,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO group_messages (id, group_id, sender_id, content, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING seq`,
		m.ID, m.GroupID, m.SenderID, m.Content, m.CreatedAt,
	).Scan(&m.Seq)
	if err != nil {
		t.Fatalf("testhelper: SeedGroupMessage insert: %v", err)
	}
	return m
}
