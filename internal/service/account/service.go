// Package account implements the user lifecycle: profile viewing and
// editing, the admin user directory, the admin role toggle and full
// account deletion with its cascade.
package account

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/textcomm/textcomm-server/internal/authz"
	"github.com/textcomm/textcomm-server/internal/config"
	"github.com/textcomm/textcomm-server/internal/domain"
	"github.com/textcomm/textcomm-server/pkg/ctxutil"
)

// userRepo defines the user repository interface needed by account service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, firstName, lastName, phone, avatarPath *string) (*domain.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteRoles(ctx context.Context, userID uuid.UUID) error
	AddRole(ctx context.Context, userID uuid.UUID, role domain.Role) error
	RemoveRole(ctx context.Context, userID uuid.UUID, role domain.Role) error
	ListAll(ctx context.Context) ([]*domain.User, error)
}

// messageRepo defines the direct message cascade interface needed by account service.
type messageRepo interface {
	DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

// groupRepo defines the group cascade interface needed by account service.
type groupRepo interface {
	RemoveMembersByUser(ctx context.Context, userID uuid.UUID) error
	DeleteMessagesBySender(ctx context.Context, userID uuid.UUID) error
}

// authMethodRepo defines the credential cascade interface needed by account service.
type authMethodRepo interface {
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}

// blobStore defines the avatar storage interface needed by account service.
type blobStore interface {
	Save(data []byte, ext string) (string, error)
	Remove(key string) error
}

// txManager defines the transaction manager interface needed by account service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements account lifecycle operations.
type Service struct {
	log         *slog.Logger
	users       userRepo
	messages    messageRepo
	groups      groupRepo
	authMethods authMethodRepo
	blobs       blobStore
	guard       *authz.Guard
	tx          txManager
	uploads     config.UploadsConfig
}

// NewService creates a new account service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	messages messageRepo,
	groups groupRepo,
	authMethods authMethodRepo,
	blobs blobStore,
	guard *authz.Guard,
	tx txManager,
	uploads config.UploadsConfig,
) *Service {
	return &Service{
		log:         logger.With("service", "account"),
		users:       users,
		messages:    messages,
		groups:      groups,
		authMethods: authMethods,
		blobs:       blobs,
		guard:       guard,
		tx:          tx,
		uploads:     uploads,
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
