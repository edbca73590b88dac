package account

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/textcomm/textcomm-server/internal/domain"
)

// GetProfile returns the authenticated user's own profile.
func (s *Service) GetProfile(ctx context.Context) (*domain.User, error) {
	actor, err := principal(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("account.GetProfile: %w", err)
	}
	return user, nil
}

// GetUser returns any user's profile by id.
// Non-admins may only fetch their own.
func (s *Service) GetUser(ctx context.Context, targetID uuid.UUID) (*domain.User, error) {
	actor, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	if !s.guard.CanEditProfile(actor, targetID) {
		return nil, domain.ErrForbidden
	}

	user, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		return nil, fmt.Errorf("account.GetUser: %w", err)
	}
	return user, nil
}

// UpdateProfile modifies the editable profile fields, storing a new
// avatar if one was uploaded. Users edit their own profile; admins may
// edit anyone's.
func (s *Service) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*domain.User, error) {
	actor, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	if !s.guard.CanEditProfile(actor, input.TargetID) {
		return nil, domain.ErrForbidden
	}

	if err := input.Validate(s.uploads.MaxSizeBytes); err != nil {
		return nil, err
	}

	current, err := s.users.GetByID(ctx, input.TargetID)
	if err != nil {
		return nil, fmt.Errorf("account.UpdateProfile get target: %w", err)
	}

	var avatarPath *string
	if input.Avatar != nil {
		ext := strings.ToLower(filepath.Ext(input.Avatar.Filename))
		key, err := s.blobs.Save(input.Avatar.Data, ext)
		if err != nil {
			return nil, fmt.Errorf("account.UpdateProfile store avatar: %w", err)
		}
		avatarPath = &key
	}

	updated, err := s.users.UpdateProfile(ctx, input.TargetID, input.FirstName, input.LastName, input.Phone, avatarPath)
	if err != nil {
		// The freshly stored avatar is orphaned, clean it up.
		if avatarPath != nil {
			_ = s.blobs.Remove(*avatarPath)
		}
		return nil, fmt.Errorf("account.UpdateProfile: %w", err)
	}

	// Drop the previous avatar only after the row update succeeded.
	if avatarPath != nil && current.AvatarPath != nil {
		if err := s.blobs.Remove(*current.AvatarPath); err != nil {
			s.log.WarnContext(ctx, "failed to remove replaced avatar",
				slog.String("key", *current.AvatarPath),
				slog.Any("error", err))
		}
	}

	s.log.InfoContext(ctx, "profile updated",
		slog.String("user_id", input.TargetID.String()))

	return updated, nil
}
