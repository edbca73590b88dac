// Package chat implements one-to-one conversations: partner discovery,
// thread retrieval and sending.
package chat

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/textcomm/textcomm-server/internal/domain"
)

// userRepo defines the user repository interface needed by chat service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	ListExcept(ctx context.Context, id uuid.UUID) ([]*domain.User, error)
}

// messageRepo defines the direct message repository interface needed by chat service.
type messageRepo interface {
	Create(ctx context.Context, msg *domain.DirectMessage) error
	ListBetween(ctx context.Context, a, b uuid.UUID) ([]domain.DirectMessage, error)
}

// Service implements direct conversation operations.
type Service struct {
	log      *slog.Logger
	users    userRepo
	messages messageRepo
}

// NewService creates a new chat service instance.
func NewService(logger *slog.Logger, users userRepo, messages messageRepo) *Service {
	return &Service{
		log:      logger.With("service", "chat"),
		users:    users,
		messages: messages,
	}
}

// Thread is one conversation as seen by the authenticated user.
type Thread struct {
	Partner  *domain.User
	Messages []domain.DirectMessage
}
