// Package guard decides whether a protected route may be shown for the
// current session.
package guard

import (
	"fmt"

	"github.com/dmitrijs2005/jobboard/internal/client/identity"
	"github.com/dmitrijs2005/jobboard/internal/common"
)

// LoginRoute is where unauthenticated users are sent.
const LoginRoute = "/login"

// View is the part of the session the guard reads. session.Store and
// session.Snapshot both satisfy it.
type View interface {
	IsLoading() bool
	IsAuthenticated() bool
}

type Decision int

const (
	// Pending means the session is still being read; no navigation
	// decision is made.
	Pending Decision = iota
	Redirect
	Allow
)

func (d Decision) String() string {
	switch d {
	case Pending:
		return "pending"
	case Redirect:
		return "redirect"
	case Allow:
		return "allow"
	default:
		return "unknown"
	}
}

// Outcome is the result of Evaluate. To and Replace are only set for
// Redirect.
type Outcome struct {
	Decision Decision
	To       string
	Replace  bool
}

// Evaluate is a pure function of v. Loading wins over credential state.
func Evaluate(v View) Outcome {
	switch {
	case v.IsLoading():
		return Outcome{Decision: Pending}
	case !v.IsAuthenticated():
		return Outcome{Decision: Redirect, To: LoginRoute, Replace: true}
	default:
		return Outcome{Decision: Allow}
	}
}

// RequireRole returns common.ErrAccessDenied unless id has one of roles.
func RequireRole(id *identity.Identity, roles ...identity.Role) error {
	if id == nil {
		return fmt.Errorf("%w: no identity", common.ErrAccessDenied)
	}
	for _, r := range roles {
		if id.Role == r {
			return nil
		}
	}
	return fmt.Errorf("%w: role %q", common.ErrAccessDenied, id.Role)
}
