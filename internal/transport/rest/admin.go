package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/textcomm/textcomm-server/internal/domain"
	"github.com/textcomm/textcomm-server/pkg/ctxutil"
)

// adminUserService defines the account administration operations needed
// by AdminHandler.
type adminUserService interface {
	ListUsers(ctx context.Context) ([]*domain.User, error)
	ToggleAdminRole(ctx context.Context, targetID uuid.UUID) (*domain.User, error)
	DeleteUser(ctx context.Context, targetID uuid.UUID) error
}

// adminGroupService defines the group administration operations needed
// by AdminHandler.
type adminGroupService interface {
	CreateGroup(ctx context.Context, name string, initialMemberIDs []uuid.UUID) (*domain.Group, error)
	DeleteGroup(ctx context.Context, groupID uuid.UUID) error
	ListAllGroups(ctx context.Context) ([]domain.Group, error)
	AddMembers(ctx context.Context, groupID uuid.UUID, userIDs []uuid.UUID) (int, error)
	RemoveMember(ctx context.Context, groupID, membershipID uuid.UUID) error
	ListMembers(ctx context.Context, groupID uuid.UUID) ([]domain.GroupMemberRow, error)
}

// AdminHandler serves the admin REST endpoints.
type AdminHandler struct {
	users  adminUserService
	groups adminGroupService
	log    *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(users adminUserService, groups adminGroupService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		users:  users,
		groups: groups,
		log:    logger.With("handler", "admin"),
	}
}

type createGroupRequest struct {
	Name    string      `json:"name"`
	UserIDs []uuid.UUID `json:"userIds"`
}

type addMembersRequest struct {
	UserIDs []uuid.UUID `json:"userIds"`
}

// ListUsers handles GET /api/admin/users.
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	users, err := h.users.ListUsers(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponses(users))
}

// ToggleAdminRole handles POST /api/admin/users/{userID}/toggle-admin.
func (h *AdminHandler) ToggleAdminRole(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}
	userID, ok := pathUUID(w, r, "userID")
	if !ok {
		return
	}

	user, err := h.users.ToggleAdminRole(r.Context(), userID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(user))
}

// DeleteUser handles DELETE /api/admin/users/{userID}.
func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}
	userID, ok := pathUUID(w, r, "userID")
	if !ok {
		return
	}

	if err := h.users.DeleteUser(r.Context(), userID); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListGroups handles GET /api/admin/groups.
func (h *AdminHandler) ListGroups(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	groups, err := h.groups.ListAllGroups(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toGroupResponses(groups))
}

// CreateGroup handles POST /api/admin/groups. The optional userIds list
// seeds the roster in the same transaction as the group itself.
func (h *AdminHandler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}
	var req createGroupRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	group, err := h.groups.CreateGroup(r.Context(), req.Name, req.UserIDs)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toGroupResponse(*group))
}

// DeleteGroup handles DELETE /api/admin/groups/{groupID}.
func (h *AdminHandler) DeleteGroup(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}
	groupID, ok := pathUUID(w, r, "groupID")
	if !ok {
		return
	}

	if err := h.groups.DeleteGroup(r.Context(), groupID); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListMembers handles GET /api/admin/groups/{groupID}/members.
func (h *AdminHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}
	groupID, ok := pathUUID(w, r, "groupID")
	if !ok {
		return
	}

	members, err := h.groups.ListMembers(r.Context(), groupID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toMemberResponses(members))
}

// AddMembers handles POST /api/admin/groups/{groupID}/members.
// Users already in the group are skipped; the response reports how many
// were actually added.
func (h *AdminHandler) AddMembers(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}
	groupID, ok := pathUUID(w, r, "groupID")
	if !ok {
		return
	}
	var req addMembersRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	added, err := h.groups.AddMembers(r.Context(), groupID, req.UserIDs)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"added": added})
}

// RemoveMember handles DELETE /api/admin/groups/{groupID}/members/{membershipID}.
// Removing a membership that no longer exists is still a 204.
func (h *AdminHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}
	groupID, ok := pathUUID(w, r, "groupID")
	if !ok {
		return
	}
	membershipID, ok := pathUUID(w, r, "membershipID")
	if !ok {
		return
	}

	if err := h.groups.RemoveMember(r.Context(), groupID, membershipID); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	if !ctxutil.IsAdminCtx(r.Context()) {
		writeError(w, http.StatusForbidden, "admin access required")
		return false
	}
	return true
}
