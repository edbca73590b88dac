package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/textcomm/textcomm-server/internal/domain"
)

// Register creates a new user with email + password authentication.
// Every new account starts with the User role.
// Returns ErrAlreadyExists if the email is already taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	// Normalize input before validation.
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.DisplayName = strings.TrimSpace(input.DisplayName)

	// Step 1: Validate input
	if err := input.Validate(s.cfg.MinPasswordLength); err != nil {
		return nil, err
	}

	// Step 2: Hash password
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}

	displayName := input.DisplayName
	if displayName == "" {
		displayName = input.Email
	}

	// Step 3: Create user + credential in a transaction.
	// Email uniqueness is enforced by the DB constraint.
	now := time.Now().UTC()
	newUser := &domain.User{
		ID:          uuid.New(),
		Email:       input.Email,
		DisplayName: displayName,
		Roles:       domain.RoleSet{domain.RoleUser},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.users.Create(txCtx, newUser); err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		am := &domain.AuthMethod{
			UserID:       newUser.ID,
			PasswordHash: string(hash),
			CreatedAt:    now,
		}
		if err := s.authMethods.Create(txCtx, am); err != nil {
			return fmt.Errorf("create auth method: %w", err)
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("auth.Register: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	// Step 4: Issue access token
	token, err := s.jwt.GenerateAccessToken(newUser.ID, newUser.Roles)
	if err != nil {
		return nil, fmt.Errorf("auth.Register issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		slog.String("user_id", newUser.ID.String()))

	return &AuthResult{AccessToken: token, User: newUser}, nil
}
