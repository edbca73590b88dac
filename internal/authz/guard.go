// Package authz holds the pure authorization predicates consulted by the
// services before any read or mutation. The predicates take plain principal
// data and the target resource; they perform no I/O themselves, which keeps
// them testable without a request pipeline or a database.
package authz

import (
	"context"

	"github.com/google/uuid"

	"github.com/textcomm/textcomm-server/internal/domain"
)

// MembershipLookup reports whether a membership exists for (groupID, userID).
// Implemented by the group repository; when called inside a transaction the
// lookup sees that transaction's state.
type MembershipLookup func(ctx context.Context, groupID, userID uuid.UUID) (bool, error)

// Guard is the authorization decision point. SeedAdminEmail identifies the
// one protected administrator account that can never be demoted or deleted.
type Guard struct {
	seedAdminEmail string
}

// NewGuard creates a Guard protecting the account with the given email.
func NewGuard(seedAdminEmail string) *Guard {
	return &Guard{seedAdminEmail: seedAdminEmail}
}

// IsProtected reports whether the user is the seed administrator.
func (g *Guard) IsProtected(u *domain.User) bool {
	return u != nil && u.Email == g.seedAdminEmail
}

// CanAccessAdminArea is true iff the actor holds the Admin role.
func (g *Guard) CanAccessAdminArea(actor *domain.User) bool {
	return actor != nil && actor.IsAdmin()
}

// CanToggleAdminRole is true iff the actor is an admin and the target is
// not the seed administrator.
func (g *Guard) CanToggleAdminRole(actor, target *domain.User) bool {
	return g.CanAccessAdminArea(actor) && !g.IsProtected(target)
}

// CanDeleteUser follows the same rule as CanToggleAdminRole.
func (g *Guard) CanDeleteUser(actor, target *domain.User) bool {
	return g.CanToggleAdminRole(actor, target)
}

// CanEditProfile is true iff the actor edits their own profile or is an admin.
func (g *Guard) CanEditProfile(actor *domain.User, targetID uuid.UUID) bool {
	if actor == nil {
		return false
	}
	return actor.ID == targetID || actor.IsAdmin()
}

// CanViewGroup is true iff the principal holds a membership in the group.
func (g *Guard) CanViewGroup(ctx context.Context, principal *domain.User, groupID uuid.UUID, lookup MembershipLookup) (bool, error) {
	if principal == nil {
		return false, nil
	}
	return lookup(ctx, groupID, principal.ID)
}

// CanPostToGroup shares the membership rule with CanViewGroup.
func (g *Guard) CanPostToGroup(ctx context.Context, principal *domain.User, groupID uuid.UUID, lookup MembershipLookup) (bool, error) {
	return g.CanViewGroup(ctx, principal, groupID, lookup)
}
