package group

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/textcomm/textcomm-server/internal/domain"
)

// AddMembers adds users to a group in one transaction. Admin only.
// Users who are already members are skipped without error; the unique
// (group_id, user_id) constraint absorbs concurrent joins the same way.
// Returns the number of memberships actually created. Returns ErrNotFound
// if the group or any referenced user does not exist.
func (s *Service) AddMembers(ctx context.Context, groupID uuid.UUID, userIDs []uuid.UUID) (int, error) {
	actor, err := principal(ctx)
	if err != nil {
		return 0, err
	}
	if !s.guard.CanAccessAdminArea(actor) {
		return 0, domain.ErrForbidden
	}

	if _, err := s.groups.GetByID(ctx, groupID); err != nil {
		return 0, fmt.Errorf("group.AddMembers get group: %w", err)
	}

	var added int
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		for _, userID := range userIDs {
			// A nonexistent user surfaces as ErrNotFound via the FK mapping
			// and rolls back the whole batch.
			ok, err := s.groups.AddMember(txCtx, &domain.GroupMembership{
				ID:      uuid.New(),
				GroupID: groupID,
				UserID:  userID,
			})
			if err != nil {
				return fmt.Errorf("add member %s: %w", userID, err)
			}
			if ok {
				added++
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("group.AddMembers: %w", err)
	}

	s.log.InfoContext(ctx, "group members added",
		slog.String("group_id", groupID.String()),
		slog.Int("requested", len(userIDs)),
		slog.Int("added", added))

	return added, nil
}

// RemoveMember removes a membership by id. Admin only. Removing a
// membership that is already gone is success, so repeated clicks and
// concurrent removals converge on the same state. Returns ErrNotFound if
// the group does not exist.
func (s *Service) RemoveMember(ctx context.Context, groupID, membershipID uuid.UUID) error {
	actor, err := principal(ctx)
	if err != nil {
		return err
	}
	if !s.guard.CanAccessAdminArea(actor) {
		return domain.ErrForbidden
	}

	if _, err := s.groups.GetByID(ctx, groupID); err != nil {
		return fmt.Errorf("group.RemoveMember get group: %w", err)
	}

	removed, err := s.groups.RemoveMember(ctx, membershipID, groupID)
	if err != nil {
		return fmt.Errorf("group.RemoveMember: %w", err)
	}

	if removed {
		s.log.InfoContext(ctx, "group member removed",
			slog.String("group_id", groupID.String()),
			slog.String("membership_id", membershipID.String()))
	}
	return nil
}

// ListMembers returns a group's roster ordered by email. Admin only.
// Returns ErrNotFound if the group does not exist.
func (s *Service) ListMembers(ctx context.Context, groupID uuid.UUID) ([]domain.GroupMemberRow, error) {
	actor, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	if !s.guard.CanAccessAdminArea(actor) {
		return nil, domain.ErrForbidden
	}

	if _, err := s.groups.GetByID(ctx, groupID); err != nil {
		return nil, fmt.Errorf("group.ListMembers get group: %w", err)
	}

	members, err := s.groups.ListMembers(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("group.ListMembers: %w", err)
	}
	return members, nil
}
