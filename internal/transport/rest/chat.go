package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/textcomm/textcomm-server/internal/domain"
	"github.com/textcomm/textcomm-server/internal/service/chat"
)

// chatService defines the minimal interface needed by ChatHandler.
type chatService interface {
	ListPartners(ctx context.Context) ([]*domain.User, error)
	GetThread(ctx context.Context, otherID uuid.UUID) (*chat.Thread, error)
	Send(ctx context.Context, recipientID uuid.UUID, content string) (*domain.DirectMessage, error)
}

// ChatHandler serves the direct-conversation REST endpoints.
type ChatHandler struct {
	svc chatService
	log *slog.Logger
}

// NewChatHandler creates a ChatHandler.
func NewChatHandler(svc chatService, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{svc: svc, log: logger.With("handler", "chat")}
}

type threadResponse struct {
	Partner  userResponse      `json:"partner"`
	Messages []messageResponse `json:"messages"`
}

type sendMessageRequest struct {
	Content string `json:"content"`
}

// ListPartners handles GET /api/chat/partners.
func (h *ChatHandler) ListPartners(w http.ResponseWriter, r *http.Request) {
	partners, err := h.svc.ListPartners(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponses(partners))
}

// GetThread handles GET /api/chat/{partnerID}.
func (h *ChatHandler) GetThread(w http.ResponseWriter, r *http.Request) {
	partnerID, ok := pathUUID(w, r, "partnerID")
	if !ok {
		return
	}

	thread, err := h.svc.GetThread(r.Context(), partnerID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	messages := make([]messageResponse, 0, len(thread.Messages))
	for _, m := range thread.Messages {
		messages = append(messages, toMessageResponse(m))
	}
	writeJSON(w, http.StatusOK, threadResponse{
		Partner:  toUserResponse(thread.Partner),
		Messages: messages,
	})
}

// SendMessage handles POST /api/chat/{partnerID}/messages.
// Blank content is accepted and dropped: 204, nothing stored.
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	partnerID, ok := pathUUID(w, r, "partnerID")
	if !ok {
		return
	}

	var req sendMessageRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	msg, err := h.svc.Send(r.Context(), partnerID, req.Content)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if msg == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusCreated, toMessageResponse(*msg))
}
