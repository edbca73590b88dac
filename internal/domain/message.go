package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DirectMessage is a message between two users. Immutable once created;
// removed only as a cascade of deleting one of its participants.
type DirectMessage struct {
	ID          uuid.UUID
	SenderID    uuid.UUID
	RecipientID uuid.UUID
	Content     string
	CreatedAt   time.Time
	// Seq is the insertion order, used as the tiebreak when two messages
	// share the same created_at.
	Seq int64
}

// NormalizeContent prepares message content for storage: leading and
// trailing whitespace is trimmed. An empty result means there is nothing
// to send and the operation is a no-op.
func NormalizeContent(content string) string {
	return strings.TrimSpace(content)
}
