package ctxutil

import (
	"context"

	"github.com/google/uuid"

	"github.com/textcomm/textcomm-server/internal/domain"
)

type ctxKey string

const (
	userIDKey    ctxKey = "user_id"
	rolesKey     ctxKey = "roles"
	requestIDKey ctxKey = "request_id"
)

// WithUserID stores the user ID in the context.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromCtx extracts the user ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithRoles stores the authenticated user's role set in the context.
func WithRoles(ctx context.Context, roles domain.RoleSet) context.Context {
	return context.WithValue(ctx, rolesKey, roles)
}

// RolesFromCtx extracts the role set from the context.
// Returns nil if absent.
func RolesFromCtx(ctx context.Context) domain.RoleSet {
	roles, _ := ctx.Value(rolesKey).(domain.RoleSet)
	return roles
}

// IsAdminCtx reports whether the context user holds the Admin role.
func IsAdminCtx(ctx context.Context) bool {
	return RolesFromCtx(ctx).IsAdmin()
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
