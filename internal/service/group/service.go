// Package group implements group chats: administration of groups and
// rosters, plus member-facing chat view and posting.
package group

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/textcomm/textcomm-server/internal/authz"
	"github.com/textcomm/textcomm-server/internal/domain"
	"github.com/textcomm/textcomm-server/pkg/ctxutil"
)

// groupRepo defines the group repository interface needed by group service.
type groupRepo interface {
	Create(ctx context.Context, g *domain.Group) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Group, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListAll(ctx context.Context) ([]domain.Group, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.Group, error)

	AddMember(ctx context.Context, m *domain.GroupMembership) (bool, error)
	RemoveMember(ctx context.Context, membershipID, groupID uuid.UUID) (bool, error)
	RemoveMembersByGroup(ctx context.Context, groupID uuid.UUID) error
	MemberExists(ctx context.Context, groupID, userID uuid.UUID) (bool, error)
	ListMembers(ctx context.Context, groupID uuid.UUID) ([]domain.GroupMemberRow, error)

	CreateMessage(ctx context.Context, msg *domain.GroupMessage) error
	ListMessages(ctx context.Context, groupID uuid.UUID) ([]domain.GroupMessageView, error)
	DeleteMessagesByGroup(ctx context.Context, groupID uuid.UUID) error
}

// txManager defines the transaction manager interface needed by group service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements group operations.
type Service struct {
	log    *slog.Logger
	groups groupRepo
	guard  *authz.Guard
	tx     txManager
}

// NewService creates a new group service instance.
func NewService(
	logger *slog.Logger,
	groups groupRepo,
	guard *authz.Guard,
	tx txManager,
) *Service {
	return &Service{
		log:    logger.With("service", "group"),
		groups: groups,
		guard:  guard,
		tx:     tx,
	}
}

// principal builds the acting user from the request context. Roles come
// from the validated access token.
func principal(ctx context.Context) (*domain.User, error) {
	id, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return &domain.User{ID: id, Roles: ctxutil.RolesFromCtx(ctx)}, nil
}
