package domain

// Role represents an authorization role held by a user.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	}
	return false
}

// RoleSet is the set of roles held by a user. Order is not significant.
// A persisted user always holds at least one role.
type RoleSet []Role

// Has reports whether the set contains the given role.
func (s RoleSet) Has(role Role) bool {
	for _, r := range s {
		if r == role {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the set contains the Admin role.
func (s RoleSet) IsAdmin() bool { return s.Has(RoleAdmin) }

// Add returns the set with the role added (no-op if already present).
func (s RoleSet) Add(role Role) RoleSet {
	if s.Has(role) {
		return s
	}
	return append(s, role)
}

// Remove returns the set with the role removed.
func (s RoleSet) Remove(role Role) RoleSet {
	out := make(RoleSet, 0, len(s))
	for _, r := range s {
		if r != role {
			out = append(out, r)
		}
	}
	return out
}
