// Package auth implements registration, password login and the seed
// administrator bootstrap.
package auth

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/textcomm/textcomm-server/internal/config"
	"github.com/textcomm/textcomm-server/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	AddRole(ctx context.Context, userID uuid.UUID, role domain.Role) error
}

// authMethodRepo defines the credential repository interface needed by auth service.
type authMethodRepo interface {
	Create(ctx context.Context, am *domain.AuthMethod) error
	GetByUser(ctx context.Context, userID uuid.UUID) (*domain.AuthMethod, error)
}

// txManager defines the transaction manager interface needed by auth service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// jwtManager defines the JWT token management interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID, roles domain.RoleSet) (string, error)
}

// Service implements auth operations.
type Service struct {
	log         *slog.Logger
	users       userRepo
	authMethods authMethodRepo
	tx          txManager
	jwt         jwtManager
	cfg         config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	authMethods authMethodRepo,
	tx txManager,
	jwt jwtManager,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:         logger.With("service", "auth"),
		users:       users,
		authMethods: authMethods,
		tx:          tx,
		jwt:         jwt,
		cfg:         cfg,
	}
}
