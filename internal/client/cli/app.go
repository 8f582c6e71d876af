package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/jobboard/internal/client/api"
	"github.com/dmitrijs2005/jobboard/internal/client/config"
	"github.com/dmitrijs2005/jobboard/internal/client/credentials"
	"github.com/dmitrijs2005/jobboard/internal/client/identity"
	"github.com/dmitrijs2005/jobboard/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/jobboard/internal/client/services"
	"github.com/dmitrijs2005/jobboard/internal/client/session"
	"github.com/dmitrijs2005/jobboard/internal/client/storage"
	"github.com/dmitrijs2005/jobboard/internal/logging"
)

// Session is the part of session.Store the CLI drives.
type Session interface {
	Init(ctx context.Context) error
	Reconcile(ctx context.Context) error
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, name, email, password string) error
	Logout(ctx context.Context) error
	Identity() *identity.Identity
	IsAuthenticated() bool
	IsLoading() bool
	Subscribe(fn func(session.Snapshot)) func()
	Close()
}

var _ Session = (*session.Store)(nil)

type App struct {
	config       *config.Config
	log          logging.Logger
	db           *sql.DB
	session      Session
	vacancies    services.VacancyService
	applications services.ApplicationService
	nav          *Navigator
	reader       *bufio.Reader
	out          io.Writer

	// loggingOut is set during an explicit logout so onSessionChange does
	// not report it as an expiry.
	loggingOut       bool
	wasAuthenticated bool
}

// NewApp opens the local store and builds the API client, the session and
// the services on top of it.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.InitDatabase(ctx, c.StorePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	store := credentials.NewRepositoryStore(metadata.NewSQLiteRepository(db))
	apiClient := api.NewClient(c.APIURL, c.APIKey, store, log)

	return &App{
		config:       c,
		log:          log,
		db:           db,
		session:      session.New(apiClient, store, log),
		vacancies:    services.NewVacancyService(apiClient),
		applications: services.NewApplicationService(apiClient),
		nav:          NewNavigator(routeHome),
		reader:       bufio.NewReader(os.Stdin),
		out:          os.Stdout,
	}, nil
}

// Run reads the stored credential and starts the REPL. It blocks until the
// user exits or stdin is closed.
func (a *App) Run(ctx context.Context) error {
	defer a.close()

	unsubscribe := a.session.Subscribe(a.onSessionChange)
	defer unsubscribe()

	if err := a.session.Init(ctx); err != nil {
		a.log.Error(ctx, "failed to read stored credential", "error", err)
	}

	a.println("Welcome to the vacancy board (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
	return nil
}

func (a *App) close() {
	a.session.Close()
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.log.Error(context.Background(), "failed to close database", "error", err)
		}
	}
}

// onSessionChange tells the user when the session ends without them asking,
// which happens after the API rejects the credential.
func (a *App) onSessionChange(snap session.Snapshot) {
	a.log.Debug(context.Background(), "session changed", "state", snap.State.String())
	if snap.State == session.StateUnauthenticated && !a.loggingOut && a.wasAuthenticated {
		a.println("Your session has ended. Please log in again.")
	}
	a.wasAuthenticated = snap.State == session.StateAuthenticated
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// getStatus renders the prompt status: current route and signed-in user.
func (a *App) getStatus() string {
	s := a.nav.Current()
	if id := a.session.Identity(); id != nil {
		s = fmt.Sprintf("%s (%s, %s)", s, id.DisplayName(), id.Role)
	}
	return s
}

// refresh re-derives the session from the stored credential. It runs before
// every prompt so a credential removed by a 401 is noticed right away.
func (a *App) refresh(ctx context.Context) {
	if err := a.session.Reconcile(ctx); err != nil {
		a.log.Warn(ctx, "failed to reconcile session", "error", err)
	}
}
