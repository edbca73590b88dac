package rest

import (
	"net/http"

	"github.com/textcomm/textcomm-server/internal/transport/middleware"
)

// blobOpener resolves stored avatar keys to filesystem paths.
type blobOpener interface {
	Open(key string) (string, error)
}

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth    *AuthHandler
	Chat    *ChatHandler
	Group   *GroupHandler
	Profile *ProfileHandler
	Admin   *AdminHandler
	Health  *HealthHandler
	Avatars blobOpener

	// RateLimiter guards the credential endpoints; nil disables limiting.
	RateLimiter    *middleware.RateLimiter
	AuthRatePerMin int
}

// NewRouter mounts all routes on a ServeMux. Authentication context is
// populated by the middleware chain around the mux; handlers and
// services enforce who may do what.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	limit := func(next http.HandlerFunc) http.Handler {
		if h.RateLimiter == nil {
			return next
		}
		return h.RateLimiter.Limit(h.AuthRatePerMin)(next)
	}

	mux.HandleFunc("GET /health/live", h.Health.Live)
	mux.HandleFunc("GET /health/ready", h.Health.Ready)

	mux.Handle("POST /api/auth/register", limit(h.Auth.Register))
	mux.Handle("POST /api/auth/login", limit(h.Auth.Login))

	mux.HandleFunc("GET /api/me", h.Profile.Me)
	mux.HandleFunc("GET /api/users/{userID}", h.Profile.GetUser)
	mux.HandleFunc("PATCH /api/users/{userID}", h.Profile.UpdateUser)

	mux.HandleFunc("GET /api/chat/partners", h.Chat.ListPartners)
	mux.HandleFunc("GET /api/chat/{partnerID}", h.Chat.GetThread)
	mux.HandleFunc("POST /api/chat/{partnerID}/messages", h.Chat.SendMessage)

	mux.HandleFunc("GET /api/groups", h.Group.ListMyGroups)
	mux.HandleFunc("GET /api/groups/{groupID}", h.Group.GetChatView)
	mux.HandleFunc("POST /api/groups/{groupID}/messages", h.Group.PostMessage)

	mux.HandleFunc("GET /api/admin/users", h.Admin.ListUsers)
	mux.HandleFunc("POST /api/admin/users/{userID}/toggle-admin", h.Admin.ToggleAdminRole)
	mux.HandleFunc("DELETE /api/admin/users/{userID}", h.Admin.DeleteUser)
	mux.HandleFunc("GET /api/admin/groups", h.Admin.ListGroups)
	mux.HandleFunc("POST /api/admin/groups", h.Admin.CreateGroup)
	mux.HandleFunc("DELETE /api/admin/groups/{groupID}", h.Admin.DeleteGroup)
	mux.HandleFunc("GET /api/admin/groups/{groupID}/members", h.Admin.ListMembers)
	mux.HandleFunc("POST /api/admin/groups/{groupID}/members", h.Admin.AddMembers)
	mux.HandleFunc("DELETE /api/admin/groups/{groupID}/members/{membershipID}", h.Admin.RemoveMember)

	if h.Avatars != nil {
		mux.HandleFunc("GET /api/avatars/{key}", func(w http.ResponseWriter, r *http.Request) {
			path, err := h.Avatars.Open(r.PathValue("key"))
			if err != nil {
				writeError(w, http.StatusNotFound, "not found")
				return
			}
			http.ServeFile(w, r, path)
		})
	}

	return mux
}
