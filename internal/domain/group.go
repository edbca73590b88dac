package domain

import (
	"time"

	"github.com/google/uuid"
)

// Group is an administrator-created group chat.
type Group struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

// GroupMembership records that a user belongs to a group.
// The pair (GroupID, UserID) is unique: a user cannot join the same
// group twice. The database constraint is the authoritative backstop.
type GroupMembership struct {
	ID      uuid.UUID
	GroupID uuid.UUID
	UserID  uuid.UUID
}

// GroupMessage is a message posted to a group. Only members may post;
// removed as a cascade of deleting the group or the sender.
type GroupMessage struct {
	ID        uuid.UUID
	GroupID   uuid.UUID
	SenderID  uuid.UUID
	Content   string
	CreatedAt time.Time
	Seq       int64
}

// GroupMessageView is a group message enriched with the sender's
// display name, as shown in the group chat.
type GroupMessageView struct {
	GroupMessage
	SenderName string
}

// GroupChatView is what a member sees when opening a group chat.
type GroupChatView struct {
	GroupID   uuid.UUID
	GroupName string
	Messages  []GroupMessageView
}

// GroupMemberRow is one row of the admin member-management listing.
type GroupMemberRow struct {
	MembershipID uuid.UUID
	UserID       uuid.UUID
	Email        string
}
