package middleware

import (
	"context"

	"github.com/textcomm/textcomm-server/internal/domain"
	"github.com/textcomm/textcomm-server/pkg/ctxutil"
)

// RequireAdmin returns domain.ErrForbidden if the context user does not
// hold the Admin role. Use inside REST handlers, not as HTTP middleware.
func RequireAdmin(ctx context.Context) error {
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}
	return nil
}
