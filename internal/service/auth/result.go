package auth

import "github.com/textcomm/textcomm-server/internal/domain"

// AuthResult is returned by Register and LoginWithPassword.
type AuthResult struct {
	AccessToken string
	User        *domain.User
}
