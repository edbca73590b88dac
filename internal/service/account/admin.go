package account

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/textcomm/textcomm-server/internal/domain"
)

// ListUsers returns every account ordered by email, with role sets.
// Admin only.
func (s *Service) ListUsers(ctx context.Context) ([]*domain.User, error) {
	actor, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	if !s.guard.CanAccessAdminArea(actor) {
		return nil, domain.ErrForbidden
	}

	users, err := s.users.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("account.ListUsers: %w", err)
	}
	return users, nil
}

// ToggleAdminRole grants the Admin role if the target lacks it and
// revokes it otherwise. Revoking re-grants the base User role if it is
// missing, so the role set never ends up empty. Admin only; the seed
// administrator cannot be toggled. The target row is locked for the
// duration so concurrent toggles serialize instead of double-applying.
func (s *Service) ToggleAdminRole(ctx context.Context, targetID uuid.UUID) (*domain.User, error) {
	actor, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	if !s.guard.CanAccessAdminArea(actor) {
		return nil, domain.ErrForbidden
	}

	var updated *domain.User
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		target, err := s.users.GetByIDForUpdate(txCtx, targetID)
		if err != nil {
			return fmt.Errorf("get target: %w", err)
		}

		if !s.guard.CanToggleAdminRole(actor, target) {
			return domain.ErrProtected
		}

		if target.IsAdmin() {
			if err := s.users.RemoveRole(txCtx, targetID, domain.RoleAdmin); err != nil {
				return fmt.Errorf("revoke admin: %w", err)
			}
			target.Roles = target.Roles.Remove(domain.RoleAdmin)
			// An account that held only Admin would otherwise be left
			// with no roles at all.
			if !target.Roles.Has(domain.RoleUser) {
				if err := s.users.AddRole(txCtx, targetID, domain.RoleUser); err != nil {
					return fmt.Errorf("restore user role: %w", err)
				}
				target.Roles = target.Roles.Add(domain.RoleUser)
			}
		} else {
			if err := s.users.AddRole(txCtx, targetID, domain.RoleAdmin); err != nil {
				return fmt.Errorf("grant admin: %w", err)
			}
			target.Roles = target.Roles.Add(domain.RoleAdmin)
		}

		updated = target
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("account.ToggleAdminRole: %w", err)
	}

	s.log.InfoContext(ctx, "admin role toggled",
		slog.String("target_id", targetID.String()),
		slog.Bool("is_admin", updated.IsAdmin()))

	return updated, nil
}

// DeleteUser removes an account and everything it owns in one
// transaction: group messages they sent, their memberships, their direct
// messages in both directions, their roles and credential, and finally
// the user row. Admin only; the seed administrator cannot be deleted.
func (s *Service) DeleteUser(ctx context.Context, targetID uuid.UUID) error {
	actor, err := principal(ctx)
	if err != nil {
		return err
	}
	if !s.guard.CanAccessAdminArea(actor) {
		return domain.ErrForbidden
	}

	// The protected check happens before any row is touched.
	target, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		return fmt.Errorf("account.DeleteUser get target: %w", err)
	}
	if !s.guard.CanDeleteUser(actor, target) {
		return domain.ErrProtected
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.groups.DeleteMessagesBySender(txCtx, targetID); err != nil {
			return fmt.Errorf("delete group messages: %w", err)
		}
		if err := s.groups.RemoveMembersByUser(txCtx, targetID); err != nil {
			return fmt.Errorf("delete memberships: %w", err)
		}
		if _, err := s.messages.DeleteByUser(txCtx, targetID); err != nil {
			return fmt.Errorf("delete direct messages: %w", err)
		}
		if err := s.users.DeleteRoles(txCtx, targetID); err != nil {
			return fmt.Errorf("delete roles: %w", err)
		}
		if err := s.authMethods.DeleteByUser(txCtx, targetID); err != nil {
			return fmt.Errorf("delete credential: %w", err)
		}
		if err := s.users.Delete(txCtx, targetID); err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("account.DeleteUser: %w", err)
	}

	// Avatar removal is outside the transaction; a leftover file is
	// harmless, a rolled-back delete with a missing avatar is not.
	if target.AvatarPath != nil {
		if err := s.blobs.Remove(*target.AvatarPath); err != nil {
			s.log.WarnContext(ctx, "failed to remove deleted user's avatar",
				slog.String("key", *target.AvatarPath),
				slog.Any("error", err))
		}
	}

	s.log.InfoContext(ctx, "user deleted",
		slog.String("target_id", targetID.String()))
	return nil
}
