package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/textcomm/textcomm-server/internal/domain"
)

// groupService defines the member-facing group operations needed by GroupHandler.
type groupService interface {
	ListMyGroups(ctx context.Context) ([]domain.Group, error)
	GetChatView(ctx context.Context, groupID uuid.UUID) (*domain.GroupChatView, error)
	PostMessage(ctx context.Context, groupID uuid.UUID, content string) (*domain.GroupMessage, error)
}

// GroupHandler serves the member-facing group REST endpoints.
type GroupHandler struct {
	svc groupService
	log *slog.Logger
}

// NewGroupHandler creates a GroupHandler.
func NewGroupHandler(svc groupService, logger *slog.Logger) *GroupHandler {
	return &GroupHandler{svc: svc, log: logger.With("handler", "group")}
}

// ListMyGroups handles GET /api/groups.
func (h *GroupHandler) ListMyGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := h.svc.ListMyGroups(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toGroupResponses(groups))
}

// GetChatView handles GET /api/groups/{groupID}.
func (h *GroupHandler) GetChatView(w http.ResponseWriter, r *http.Request) {
	groupID, ok := pathUUID(w, r, "groupID")
	if !ok {
		return
	}

	view, err := h.svc.GetChatView(r.Context(), groupID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toGroupChatViewResponse(view))
}

// PostMessage handles POST /api/groups/{groupID}/messages.
// Blank content is accepted and dropped: 204, nothing stored.
func (h *GroupHandler) PostMessage(w http.ResponseWriter, r *http.Request) {
	groupID, ok := pathUUID(w, r, "groupID")
	if !ok {
		return
	}

	var req sendMessageRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	msg, err := h.svc.PostMessage(r.Context(), groupID, req.Content)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if msg == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusCreated, groupMessageResponse{
		ID:        msg.ID.String(),
		SenderID:  msg.SenderID.String(),
		Content:   msg.Content,
		CreatedAt: msg.CreatedAt,
	})
}
