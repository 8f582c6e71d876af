package identity

import "strings"

// Role is the closed set of user roles issued by the API.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleManager   Role = "manager"
	RoleCandidate Role = "candidate"
)

// legacy role names still issued by older API deployments
var roleAliases = map[string]Role{
	"gestor": RoleManager,
	"coder":  RoleCandidate,
}

// IsValid reports whether r is one of the predefined roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleCandidate:
		return true
	default:
		return false
	}
}

// ParseRole normalises s into a Role. The second result is false when s is
// not a known role or alias.
func ParseRole(s string) (Role, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if alias, ok := roleAliases[s]; ok {
		return alias, true
	}
	r := Role(s)
	return r, r.IsValid()
}

// AllRoles returns every role in display order.
func AllRoles() []Role {
	return []Role{RoleAdmin, RoleManager, RoleCandidate}
}
