package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/textcomm/textcomm-server/internal/domain"
)

// EnsureSeedAdmin creates the protected administrator account if it does
// not exist yet, and re-grants the Admin role if it was somehow lost.
// Called once at startup; idempotent across restarts.
func (s *Service) EnsureSeedAdmin(ctx context.Context) error {
	existing, err := s.users.GetByEmail(ctx, s.cfg.SeedAdminEmail)
	if err == nil {
		// Account exists. The Admin role grant is idempotent.
		if !existing.Roles.IsAdmin() {
			if err := s.users.AddRole(ctx, existing.ID, domain.RoleAdmin); err != nil {
				return fmt.Errorf("auth.EnsureSeedAdmin re-grant admin: %w", err)
			}
			s.log.WarnContext(ctx, "seed admin was missing the admin role, re-granted",
				slog.String("user_id", existing.ID.String()))
		}
		return nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("auth.EnsureSeedAdmin lookup: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.cfg.SeedAdminPassword), s.cfg.PasswordHashCost)
	if err != nil {
		return fmt.Errorf("auth.EnsureSeedAdmin hash password: %w", err)
	}

	now := time.Now().UTC()
	admin := &domain.User{
		ID:          uuid.New(),
		Email:       s.cfg.SeedAdminEmail,
		DisplayName: s.cfg.SeedAdminEmail,
		Roles:       domain.RoleSet{domain.RoleUser, domain.RoleAdmin},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.users.Create(txCtx, admin); err != nil {
			return fmt.Errorf("create seed admin: %w", err)
		}
		am := &domain.AuthMethod{
			UserID:       admin.ID,
			PasswordHash: string(hash),
			CreatedAt:    now,
		}
		if err := s.authMethods.Create(txCtx, am); err != nil {
			return fmt.Errorf("create seed admin credential: %w", err)
		}
		return nil
	})
	if err != nil {
		// A concurrent instance may have created the account between the
		// lookup and the insert; that outcome is fine.
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil
		}
		return fmt.Errorf("auth.EnsureSeedAdmin: %w", err)
	}

	s.log.InfoContext(ctx, "seed admin created",
		slog.String("user_id", admin.ID.String()),
		slog.String("email", admin.Email))
	return nil
}
