package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/jobboard/internal/client/identity"
	"github.com/dmitrijs2005/jobboard/internal/client/models"
	"github.com/dmitrijs2005/jobboard/internal/client/session"
	"github.com/dmitrijs2005/jobboard/internal/logging"
)

// ---- session ----

type fakeSession struct {
	id      *identity.Identity
	authed  bool
	loading bool

	// identity adopted on a successful Login/Register
	loginAs *identity.Identity

	loginErr    error
	registerErr error
	logoutErr   error
	initErr     error

	calls      []string
	loginEmail string
	loginPass  string
	regName    string
	reconciles int
	closed     bool
	subs       []func(session.Snapshot)
}

func (f *fakeSession) Init(context.Context) error {
	f.calls = append(f.calls, "init")
	f.loading = false
	f.publish()
	return f.initErr
}

func (f *fakeSession) Reconcile(context.Context) error {
	f.reconciles++
	return nil
}

func (f *fakeSession) Login(_ context.Context, email, password string) error {
	f.calls = append(f.calls, "login")
	f.loginEmail, f.loginPass = email, password
	if f.loginErr != nil {
		return f.loginErr
	}
	f.authed, f.id = true, f.loginAs
	f.publish()
	return nil
}

func (f *fakeSession) Register(ctx context.Context, name, email, password string) error {
	f.calls = append(f.calls, "register")
	f.regName = name
	if f.registerErr != nil {
		return f.registerErr
	}
	return f.Login(ctx, email, password)
}

func (f *fakeSession) Logout(context.Context) error {
	f.calls = append(f.calls, "logout")
	f.authed, f.id = false, nil
	f.publish()
	return f.logoutErr
}

func (f *fakeSession) Identity() *identity.Identity { return f.id }
func (f *fakeSession) IsAuthenticated() bool        { return f.authed }
func (f *fakeSession) IsLoading() bool              { return f.loading }

func (f *fakeSession) Subscribe(fn func(session.Snapshot)) func() {
	f.subs = append(f.subs, fn)
	return func() { f.subs = nil }
}

func (f *fakeSession) Close() { f.closed = true }

func (f *fakeSession) publish() {
	snap := session.Snapshot{Identity: f.id, Loading: f.loading}
	switch {
	case f.loading:
		snap.State = session.StateInitializing
	case f.authed:
		snap.State = session.StateAuthenticated
		snap.Credential = "credential"
	default:
		snap.State = session.StateUnauthenticated
	}
	for _, fn := range f.subs {
		fn(snap)
	}
}

func signedIn(role identity.Role) *fakeSession {
	id := &identity.Identity{ID: "7", Email: "ana@x.com", Name: "Ana", Role: role}
	return &fakeSession{id: id, authed: true, loginAs: id}
}

// ---- services ----

type fakeVacancies struct {
	items  []models.Vacancy
	byID   map[int64]models.Vacancy
	getErr error

	listErr   error
	writeErr  error
	created   []models.VacancyInput
	updated   map[int64]models.VacancyInput
	toggled   []int64
	deleted   []int64
	listCalls int
}

func (f *fakeVacancies) List(context.Context) ([]models.Vacancy, error) {
	f.listCalls++
	return f.items, f.listErr
}

func (f *fakeVacancies) Get(_ context.Context, id int64) (*models.Vacancy, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	v, ok := f.byID[id]
	if !ok {
		return nil, errNotFoundForTest
	}
	return &v, nil
}

func (f *fakeVacancies) Create(_ context.Context, in models.VacancyInput) error {
	if err := in.Validate(); err != nil {
		return err
	}
	f.created = append(f.created, in)
	return f.writeErr
}

func (f *fakeVacancies) Update(_ context.Context, id int64, in models.VacancyInput) error {
	if err := in.Validate(); err != nil {
		return err
	}
	if f.updated == nil {
		f.updated = map[int64]models.VacancyInput{}
	}
	f.updated[id] = in
	return f.writeErr
}

func (f *fakeVacancies) Toggle(_ context.Context, id int64) error {
	f.toggled = append(f.toggled, id)
	return f.writeErr
}

func (f *fakeVacancies) Delete(_ context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return f.writeErr
}

type fakeApplications struct {
	mine     []models.Application
	all      []models.Application
	applyErr error
	listErr  error

	applied   []int64
	mineCalls int
	allCalls  int
}

func (f *fakeApplications) Apply(_ context.Context, id int64) error {
	f.applied = append(f.applied, id)
	return f.applyErr
}

func (f *fakeApplications) Mine(context.Context) ([]models.Application, error) {
	f.mineCalls++
	return f.mine, f.listErr
}

func (f *fakeApplications) All(context.Context) ([]models.Application, error) {
	f.allCalls++
	return f.all, f.listErr
}

// ---- app & input ----

type testApp struct {
	*App
	out  *bytes.Buffer
	sess *fakeSession
	vac  *fakeVacancies
	apps *fakeApplications
}

func newTestApp(sess *fakeSession, readerLines ...string) *testApp {
	out := &bytes.Buffer{}
	vac := &fakeVacancies{byID: map[int64]models.Vacancy{}}
	apps := &fakeApplications{}
	return &testApp{
		App: &App{
			log:          logging.Nop(),
			session:      sess,
			vacancies:    vac,
			applications: apps,
			nav:          NewNavigator(routeHome),
			reader:       bufio.NewReader(strings.NewReader(strings.Join(readerLines, "\n") + "\n")),
			out:          out,
		},
		out:  out,
		sess: sess,
		vac:  vac,
		apps: apps,
	}
}

// stubInputs replaces the prompt helpers with a queue of answers. Multiline
// prompts take their answer from the same queue.
func stubInputs(t *testing.T, password string, answers ...string) {
	t.Helper()
	origST, origGP, origML := getSimpleText, getPassword, getMultiline

	next := func() (string, error) {
		if len(answers) == 0 {
			return "", io.EOF
		}
		a := answers[0]
		answers = answers[1:]
		return a, nil
	}
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return next() }
	getMultiline = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return next() }
	getPassword = func(_ io.Writer) ([]byte, error) { return []byte(password), nil }

	t.Cleanup(func() {
		getSimpleText, getPassword, getMultiline = origST, origGP, origML
	})
}
