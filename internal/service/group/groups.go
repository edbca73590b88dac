package group

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/textcomm/textcomm-server/internal/domain"
)

// CreateGroup creates a new group with its initial roster in one
// transaction. Admin only. Duplicate ids in initialMemberIDs collapse to a
// single membership; a nonexistent user rolls the whole creation back with
// ErrNotFound.
func (s *Service) CreateGroup(ctx context.Context, name string, initialMemberIDs []uuid.UUID) (*domain.Group, error) {
	actor, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	if !s.guard.CanAccessAdminArea(actor) {
		return nil, domain.ErrForbidden
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewValidationError("name", "required")
	}
	if len(name) > 255 {
		return nil, domain.NewValidationError("name", "too long")
	}

	g := &domain.Group{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}

	members := dedupIDs(initialMemberIDs)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.groups.Create(txCtx, g); err != nil {
			return fmt.Errorf("create group: %w", err)
		}
		for _, userID := range members {
			if _, err := s.groups.AddMember(txCtx, &domain.GroupMembership{
				ID:      uuid.New(),
				GroupID: g.ID,
				UserID:  userID,
			}); err != nil {
				return fmt.Errorf("add member %s: %w", userID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("group.CreateGroup: %w", err)
	}

	s.log.InfoContext(ctx, "group created",
		slog.String("group_id", g.ID.String()),
		slog.String("name", g.Name),
		slog.Int("members", len(members)))

	return g, nil
}

func dedupIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// DeleteGroup removes a group with all its messages and memberships in
// one transaction. Admin only. Returns ErrNotFound if the group is absent.
func (s *Service) DeleteGroup(ctx context.Context, groupID uuid.UUID) error {
	actor, err := principal(ctx)
	if err != nil {
		return err
	}
	if !s.guard.CanAccessAdminArea(actor) {
		return domain.ErrForbidden
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.groups.DeleteMessagesByGroup(txCtx, groupID); err != nil {
			return fmt.Errorf("delete messages: %w", err)
		}
		if err := s.groups.RemoveMembersByGroup(txCtx, groupID); err != nil {
			return fmt.Errorf("delete memberships: %w", err)
		}
		if err := s.groups.Delete(txCtx, groupID); err != nil {
			return fmt.Errorf("delete group: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("group.DeleteGroup: %w", err)
	}

	s.log.InfoContext(ctx, "group deleted",
		slog.String("group_id", groupID.String()))
	return nil
}

// ListMyGroups returns the groups the authenticated user belongs to,
// ordered by name.
func (s *Service) ListMyGroups(ctx context.Context) ([]domain.Group, error) {
	actor, err := principal(ctx)
	if err != nil {
		return nil, err
	}

	groups, err := s.groups.ListForUser(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("group.ListMyGroups: %w", err)
	}
	return groups, nil
}

// ListAllGroups returns every group ordered by name. Admin only.
func (s *Service) ListAllGroups(ctx context.Context) ([]domain.Group, error) {
	actor, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	if !s.guard.CanAccessAdminArea(actor) {
		return nil, domain.ErrForbidden
	}

	groups, err := s.groups.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("group.ListAllGroups: %w", err)
	}
	return groups, nil
}
