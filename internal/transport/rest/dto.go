package rest

import (
	"time"

	"github.com/textcomm/textcomm-server/internal/domain"
)

type userResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	FirstName   *string   `json:"firstName,omitempty"`
	LastName    *string   `json:"lastName,omitempty"`
	Phone       *string   `json:"phone,omitempty"`
	AvatarPath  *string   `json:"avatarPath,omitempty"`
	Roles       []string  `json:"roles"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toUserResponse(u *domain.User) userResponse {
	roles := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		roles = append(roles, string(r))
	}
	return userResponse{
		ID:          u.ID.String(),
		Email:       u.Email,
		DisplayName: u.DisplayName,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Phone:       u.Phone,
		AvatarPath:  u.AvatarPath,
		Roles:       roles,
		CreatedAt:   u.CreatedAt,
	}
}

func toUserResponses(users []*domain.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out
}

type messageResponse struct {
	ID          string    `json:"id"`
	SenderID    string    `json:"senderId"`
	RecipientID string    `json:"recipientId"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toMessageResponse(m domain.DirectMessage) messageResponse {
	return messageResponse{
		ID:          m.ID.String(),
		SenderID:    m.SenderID.String(),
		RecipientID: m.RecipientID.String(),
		Content:     m.Content,
		CreatedAt:   m.CreatedAt,
	}
}

type groupResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

func toGroupResponse(g domain.Group) groupResponse {
	return groupResponse{
		ID:        g.ID.String(),
		Name:      g.Name,
		CreatedAt: g.CreatedAt,
	}
}

func toGroupResponses(groups []domain.Group) []groupResponse {
	out := make([]groupResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, toGroupResponse(g))
	}
	return out
}

type groupMessageResponse struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"senderId"`
	SenderName string    `json:"senderName,omitempty"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
}

type groupChatViewResponse struct {
	GroupID   string                 `json:"groupId"`
	GroupName string                 `json:"groupName"`
	Messages  []groupMessageResponse `json:"messages"`
}

func toGroupChatViewResponse(view *domain.GroupChatView) groupChatViewResponse {
	messages := make([]groupMessageResponse, 0, len(view.Messages))
	for _, m := range view.Messages {
		messages = append(messages, groupMessageResponse{
			ID:         m.ID.String(),
			SenderID:   m.SenderID.String(),
			SenderName: m.SenderName,
			Content:    m.Content,
			CreatedAt:  m.CreatedAt,
		})
	}
	return groupChatViewResponse{
		GroupID:   view.GroupID.String(),
		GroupName: view.GroupName,
		Messages:  messages,
	}
}

type memberResponse struct {
	MembershipID string `json:"membershipId"`
	UserID       string `json:"userId"`
	Email        string `json:"email"`
}

func toMemberResponses(rows []domain.GroupMemberRow) []memberResponse {
	out := make([]memberResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, memberResponse{
			MembershipID: row.MembershipID.String(),
			UserID:       row.UserID.String(),
			Email:        row.Email,
		})
	}
	return out
}
