package cli

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/jobboard/internal/client/api"
	"github.com/dmitrijs2005/jobboard/internal/client/identity"
	"github.com/dmitrijs2005/jobboard/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func guest() *fakeSession {
	return &fakeSession{loginAs: &identity.Identity{ID: "1", Email: "a@x.com", Role: identity.RoleCandidate}}
}

func TestLogin_Success(t *testing.T) {
	a := newTestApp(guest())
	stubInputs(t, "secret", "a@x.com")

	require.NoError(t, a.Login(context.Background()))

	assert.Equal(t, "a@x.com", a.sess.loginEmail)
	assert.Equal(t, "secret", a.sess.loginPass)
	assert.True(t, a.sess.IsAuthenticated())
	assert.Contains(t, a.out.String(), "Signed in as a@x.com (candidate)")
	assert.Equal(t, []string{"/", "/login", "/"}, a.nav.History())
}

func TestLogin_ServerMessageOrFallback(t *testing.T) {
	a := newTestApp(guest())
	a.sess.loginErr = &api.APIError{Status: 401, Message: "Invalid credentials", Err: common.ErrUnauthorized}
	stubInputs(t, "wrong", "a@x.com")

	require.Error(t, a.Login(context.Background()))
	assert.Equal(t, "Invalid credentials\n", a.out.String())
	assert.False(t, a.sess.IsAuthenticated())
	assert.Equal(t, "/login", a.nav.Current())

	b := newTestApp(guest())
	b.sess.loginErr = common.ErrUnavailable
	stubInputs(t, "secret", "a@x.com")

	require.Error(t, b.Login(context.Background()))
	assert.Equal(t, "Failed to login\n", b.out.String())
}

func TestLogin_InvalidFormIsNotSent(t *testing.T) {
	a := newTestApp(guest())
	stubInputs(t, "secret", "not-an-email")

	require.Error(t, a.Login(context.Background()))
	assert.Empty(t, a.sess.calls)
	assert.Contains(t, a.out.String(), "email:")
}

func TestLogin_UnreadableCredential(t *testing.T) {
	// the store purges an undecodable credential on the next reconcile
	sess := &reconcilePurge{fakeSession: guest()}
	a := newTestApp(sess.fakeSession)
	a.session = sess
	stubInputs(t, "secret", "a@x.com")

	require.NoError(t, a.Login(context.Background()))
	assert.Contains(t, a.out.String(), "unreadable credential")
	assert.Equal(t, "/login", a.nav.Current())
}

type reconcilePurge struct{ *fakeSession }

func (r *reconcilePurge) Reconcile(context.Context) error {
	r.authed, r.id = false, nil
	return nil
}

func TestRegister_ChainsLogin(t *testing.T) {
	a := newTestApp(guest())
	stubInputs(t, "secret", "Ana", "a@x.com")

	require.NoError(t, a.Register(context.Background()))

	assert.Equal(t, []string{"register", "login"}, a.sess.calls)
	assert.Equal(t, "Ana", a.sess.regName)
	assert.True(t, a.sess.IsAuthenticated())
	assert.Equal(t, "/", a.nav.Current())
}

func TestRegister_Failure(t *testing.T) {
	a := newTestApp(guest())
	a.sess.registerErr = &api.APIError{Status: 409, Message: "Email already registered", Err: common.ErrRejected}
	stubInputs(t, "secret", "Ana", "a@x.com")

	require.Error(t, a.Register(context.Background()))

	assert.Equal(t, []string{"register"}, a.sess.calls)
	assert.Equal(t, "Email already registered\n", a.out.String())
	assert.Equal(t, "/register", a.nav.Current())
}

func TestLogout_TwiceIsQuiet(t *testing.T) {
	sess := signedIn(identity.RoleAdmin)
	a := newTestApp(sess)
	sess.Subscribe(a.onSessionChange)
	a.wasAuthenticated = true

	require.NoError(t, a.Logout(context.Background()))
	require.NoError(t, a.Logout(context.Background()))

	assert.False(t, sess.IsAuthenticated())
	assert.Equal(t, "/login", a.nav.Current())
	assert.Equal(t, "Logged out.\nLogged out.\n", a.out.String())
}

func TestOnSessionChange_ReportsExpiry(t *testing.T) {
	sess := signedIn(identity.RoleCandidate)
	a := newTestApp(sess)
	sess.Subscribe(a.onSessionChange)

	sess.publish()
	assert.Empty(t, a.out.String())

	// what a 401 followed by reconcile looks like from the outside
	sess.authed, sess.id = false, nil
	sess.publish()
	assert.Contains(t, a.out.String(), "Your session has ended")

	a.out.Reset()
	sess.publish()
	assert.Empty(t, a.out.String())
}

func TestWhoami(t *testing.T) {
	a := newTestApp(&fakeSession{})
	require.NoError(t, a.Whoami(context.Background()))
	assert.Equal(t, "Not logged in.\n", a.out.String())

	b := newTestApp(signedIn(identity.RoleManager))
	require.NoError(t, b.Whoami(context.Background()))
	assert.Contains(t, b.out.String(), "Ana <ana@x.com>")
	assert.Contains(t, b.out.String(), "role: manager")
}

func TestHelp_DependsOnRole(t *testing.T) {
	tests := []struct {
		sess    *fakeSession
		want    string
		notWant string
	}{
		{&fakeSession{}, "login, register", "logout"},
		{signedIn(identity.RoleCandidate), "apply <id>, myapps", "new"},
		{signedIn(identity.RoleManager), "new, edit <id>", "allapps"},
		{signedIn(identity.RoleAdmin), "allapps", "apply"},
	}
	for _, tt := range tests {
		a := newTestApp(tt.sess)
		a.Help(context.Background())
		assert.Contains(t, a.out.String(), tt.want)
		assert.NotContains(t, a.out.String(), tt.notWant)
	}
}

func TestGetStatus(t *testing.T) {
	a := newTestApp(&fakeSession{})
	assert.Equal(t, "/", a.getStatus())

	b := newTestApp(signedIn(identity.RoleAdmin))
	b.nav.Push("/applications")
	assert.Equal(t, "/applications (Ana, admin)", b.getStatus())
}
