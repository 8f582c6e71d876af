package cli

import (
	"context"

	"github.com/dmitrijs2005/jobboard/internal/client/guard"
	"github.com/dmitrijs2005/jobboard/internal/client/identity"
)

// enter navigates to route and runs the session guard on it. It returns
// false when the route may not be shown; the user has then been told why
// and, if needed, sent to the login route in place of route.
func (a *App) enter(ctx context.Context, route string) bool {
	a.nav.Push(route)
	a.refresh(ctx)

	out := guard.Evaluate(a.session)
	switch out.Decision {
	case guard.Pending:
		a.println("Loading...")
		return false
	case guard.Redirect:
		if out.Replace {
			a.nav.Replace(out.To)
		} else {
			a.nav.Push(out.To)
		}
		a.println("Please log in to continue (type 'login').")
		return false
	default:
		return true
	}
}

// allowRoles prints "Access Denied" unless the signed-in user has one of
// roles.
func (a *App) allowRoles(ctx context.Context, roles ...identity.Role) bool {
	if err := guard.RequireRole(a.session.Identity(), roles...); err != nil {
		a.log.Debug(ctx, "access denied", "route", a.nav.Current(), "error", err)
		a.println("Access Denied")
		return false
	}
	return true
}

var managerRoles = []identity.Role{identity.RoleAdmin, identity.RoleManager}
