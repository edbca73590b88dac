package group

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/textcomm/textcomm-server/internal/domain"
)

// GetChatView returns a group's messages with sender names for a member.
// Returns ErrNotFound if the group does not exist, ErrForbidden if the
// caller is not a member. Admin status alone does not grant access to a
// chat the admin has not joined.
func (s *Service) GetChatView(ctx context.Context, groupID uuid.UUID) (*domain.GroupChatView, error) {
	actor, err := principal(ctx)
	if err != nil {
		return nil, err
	}

	g, err := s.groups.GetByID(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("group.GetChatView get group: %w", err)
	}

	allowed, err := s.guard.CanViewGroup(ctx, actor, groupID, s.groups.MemberExists)
	if err != nil {
		return nil, fmt.Errorf("group.GetChatView membership: %w", err)
	}
	if !allowed {
		return nil, domain.ErrForbidden
	}

	msgs, err := s.groups.ListMessages(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("group.GetChatView list messages: %w", err)
	}

	return &domain.GroupChatView{
		GroupID:   g.ID,
		GroupName: g.Name,
		Messages:  msgs,
	}, nil
}

// PostMessage posts to a group the caller belongs to. Returns ErrNotFound
// if the group does not exist, ErrForbidden if the caller is not a member.
// Once access is established the content is trimmed; a message that is
// empty after trimming is silently dropped and PostMessage returns
// (nil, nil).
func (s *Service) PostMessage(ctx context.Context, groupID uuid.UUID, content string) (*domain.GroupMessage, error) {
	actor, err := principal(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := s.groups.GetByID(ctx, groupID); err != nil {
		return nil, fmt.Errorf("group.PostMessage get group: %w", err)
	}

	allowed, err := s.guard.CanPostToGroup(ctx, actor, groupID, s.groups.MemberExists)
	if err != nil {
		return nil, fmt.Errorf("group.PostMessage membership: %w", err)
	}
	if !allowed {
		return nil, domain.ErrForbidden
	}

	// Access is checked first so a blank post from an outsider still
	// answers Forbidden rather than leaking a silent success.
	content = domain.NormalizeContent(content)
	if content == "" {
		return nil, nil
	}

	msg := &domain.GroupMessage{
		ID:        uuid.New(),
		GroupID:   groupID,
		SenderID:  actor.ID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.groups.CreateMessage(ctx, msg); err != nil {
		return nil, fmt.Errorf("group.PostMessage create: %w", err)
	}

	s.log.InfoContext(ctx, "group message posted",
		slog.String("group_id", groupID.String()),
		slog.String("message_id", msg.ID.String()))

	return msg, nil
}
