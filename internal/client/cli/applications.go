package cli

import (
	"context"

	"github.com/dmitrijs2005/jobboard/internal/client/api"
)

// MyApplications lists the signed-in user's applications.
func (a *App) MyApplications(ctx context.Context) error {
	if !a.enter(ctx, routeMyApplications) {
		return nil
	}

	apps, err := a.applications.Mine(ctx)
	if err != nil {
		a.log.Warn(ctx, "failed to load applications", "error", err)
		a.println(api.MessageOr(err, "Failed to load applications."))
		return err
	}

	a.println("My Applications")
	if len(apps) == 0 {
		a.println("You haven't applied to any vacancies yet. Type 'list' to browse vacancies.")
		return nil
	}
	for _, app := range apps {
		a.println(renderApplication(app, false))
	}
	return nil
}

// AllApplications lists every application. Anyone but an admin is sent back
// to the vacancy list.
func (a *App) AllApplications(ctx context.Context) error {
	a.nav.Push(routeApplications)
	a.refresh(ctx)

	if !a.session.Identity().IsAdmin() {
		a.nav.Replace(routeHome)
		return a.List(ctx)
	}

	apps, err := a.applications.All(ctx)
	if err != nil {
		a.log.Warn(ctx, "failed to load applications", "error", err)
		a.println(api.MessageOr(err, "Failed to load applications."))
		return err
	}

	a.println("All Applications (Admin)")
	if len(apps) == 0 {
		a.println("No applications found in the system.")
		return nil
	}
	for _, app := range apps {
		a.println(renderApplication(app, true))
	}
	return nil
}
