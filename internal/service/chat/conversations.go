package chat

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/textcomm/textcomm-server/internal/domain"
	"github.com/textcomm/textcomm-server/pkg/ctxutil"
)

// ListPartners returns every other user as a potential conversation
// partner, ordered by display name.
func (s *Service) ListPartners(ctx context.Context) ([]*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	partners, err := s.users.ListExcept(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("chat.ListPartners: %w", err)
	}
	return partners, nil
}

// GetThread returns the conversation with another user, oldest message
// first. Both directions appear in one thread regardless of who opened it.
// Returns ErrNotFound if the other user does not exist.
func (s *Service) GetThread(ctx context.Context, otherID uuid.UUID) (*Thread, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	partner, err := s.users.GetByID(ctx, otherID)
	if err != nil {
		return nil, fmt.Errorf("chat.GetThread get partner: %w", err)
	}

	msgs, err := s.messages.ListBetween(ctx, userID, otherID)
	if err != nil {
		return nil, fmt.Errorf("chat.GetThread list: %w", err)
	}

	return &Thread{Partner: partner, Messages: msgs}, nil
}

// Send posts a message to another user. Content is trimmed first; a
// message that is empty after trimming is silently dropped and Send
// returns (nil, nil). Returns ErrNotFound if the recipient does not exist.
func (s *Service) Send(ctx context.Context, recipientID uuid.UUID, content string) (*domain.DirectMessage, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	content = domain.NormalizeContent(content)
	if content == "" {
		// Whitespace-only input is not an error, just nothing to store.
		return nil, nil
	}

	if _, err := s.users.GetByID(ctx, recipientID); err != nil {
		return nil, fmt.Errorf("chat.Send get recipient: %w", err)
	}

	msg := &domain.DirectMessage{
		ID:          uuid.New(),
		SenderID:    userID,
		RecipientID: recipientID,
		Content:     content,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("chat.Send create: %w", err)
	}

	s.log.InfoContext(ctx, "direct message sent",
		slog.String("message_id", msg.ID.String()),
		slog.String("recipient_id", recipientID.String()))

	return msg, nil
}
