package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/jobboard/internal/client/api"
	"github.com/dmitrijs2005/jobboard/internal/client/models"
)

// getSimpleText, getPassword and getMultiline are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getMultiline = GetMultiline

// Login prompts for email and password and signs in. On success the user is
// taken to the vacancy list.
func (a *App) Login(ctx context.Context) error {
	a.nav.Push(routeLogin)

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	form := models.LoginForm{Email: email, Password: string(password)}
	if err := form.Validate(); err != nil {
		a.println(err.Error())
		return err
	}

	if err := a.session.Login(ctx, form.Email, form.Password); err != nil {
		a.log.Warn(ctx, "login failed", "email", form.Email, "error", err)
		a.println(api.MessageOr(err, "Failed to login"))
		return err
	}

	a.signedIn(ctx)
	return nil
}

// Register creates an account and signs in with it.
func (a *App) Register(ctx context.Context) error {
	a.nav.Push(routeRegister)

	name, err := getSimpleText(a.reader, "Enter full name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	form := models.RegisterForm{Name: name, Email: email, Password: string(password)}
	if err := form.Validate(); err != nil {
		a.println(err.Error())
		return err
	}

	if err := a.session.Register(ctx, form.Name, form.Email, form.Password); err != nil {
		a.log.Warn(ctx, "registration failed", "email", form.Email, "error", err)
		a.println(api.MessageOr(err, "Registration failed"))
		return err
	}

	a.signedIn(ctx)
	return nil
}

func (a *App) signedIn(ctx context.Context) {
	a.refresh(ctx)
	if !a.session.IsAuthenticated() {
		a.println("The server returned an unreadable credential. Please try again.")
		return
	}
	if id := a.session.Identity(); id != nil {
		a.printf("Signed in as %s (%s)\n", id.DisplayName(), id.Role)
	}
	a.nav.Push(routeHome)
}

// Logout forgets the credential and goes to the login route.
func (a *App) Logout(ctx context.Context) error {
	a.loggingOut = true
	err := a.session.Logout(ctx)
	a.loggingOut = false

	a.nav.Push(routeLogin)
	if err != nil {
		a.log.Error(ctx, "logout failed", "error", err)
		return err
	}
	a.println("Logged out.")
	return nil
}

func (a *App) Whoami(ctx context.Context) error {
	a.refresh(ctx)
	id := a.session.Identity()
	if id == nil {
		a.println("Not logged in.")
		return nil
	}
	a.printf("%s <%s>\nrole: %s\nid: %s\n", id.DisplayName(), id.Email, id.Role, id.ID)
	if !id.ExpiresAt.IsZero() {
		a.printf("expires: %s\n", id.ExpiresAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func (a *App) Back(context.Context) error {
	if !a.nav.Back() {
		a.println("Already at the first page.")
		return nil
	}
	a.println(fmt.Sprintf("Now at %s", a.nav.Current()))
	return nil
}

func (a *App) Help(ctx context.Context) {
	id := a.session.Identity()
	switch {
	case id == nil:
		a.println("Available commands: (l)ist, show <id>, login, register, back, exit")
	case id.CanManageVacancies():
		cmds := "(l)ist, show <id>, new, edit <id>, toggle <id>, delete <id>"
		if id.IsAdmin() {
			cmds += ", allapps"
		}
		a.println("Available commands: " + cmds + ", whoami, logout, back, exit")
	default:
		a.println("Available commands: (l)ist, show <id>, apply <id>, myapps, whoami, logout, back, exit")
	}
}
