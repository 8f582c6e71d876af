// Package session owns the client's authentication state: the credential,
// the identity derived from it, and the login/register/logout operations.
//
// Lifecycle: New → Init (start-up read) → Reconcile after every credential
// change → Close. Exactly one Store is expected per running client.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/jobboard/internal/client/api"
	"github.com/dmitrijs2005/jobboard/internal/client/credentials"
	"github.com/dmitrijs2005/jobboard/internal/client/identity"
	"github.com/dmitrijs2005/jobboard/internal/common"
	"github.com/dmitrijs2005/jobboard/internal/logging"
)

const (
	loginPath    = "/auth/login"
	registerPath = "/auth/register"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken       string `json:"accessToken"`
	AccessTokenLegacy string `json:"access_token"`
}

func (r loginResponse) token() string {
	if r.AccessToken != "" {
		return r.AccessToken
	}
	return r.AccessTokenLegacy
}

// Store is the session state machine. It is safe for concurrent use, but
// concurrent Login/Register calls are not coordinated: the last one to
// finish wins.
type Store struct {
	api         api.Requester
	credentials credentials.Store
	log         logging.Logger

	mu         sync.RWMutex
	credential string
	identity   *identity.Identity
	derivedFor string
	loading    bool

	subsMu  sync.Mutex
	subs    map[int]func(Snapshot)
	nextSub int
}

func New(r api.Requester, store credentials.Store, log logging.Logger) *Store {
	return &Store{
		api:         r,
		credentials: store,
		log:         log,
		loading:     true,
		subs:        make(map[int]func(Snapshot)),
	}
}

// Init reads the stored credential and derives the identity from it. A
// credential that does not decode is deleted. Loading is false afterwards
// even when the read fails.
func (s *Store) Init(ctx context.Context) error {
	stored, err := s.credentials.Load(ctx)

	s.mu.Lock()
	if err != nil {
		s.credential, s.identity, s.derivedFor = "", nil, ""
		s.loading = false
		s.mu.Unlock()
		s.notify()
		return fmt.Errorf("read stored credential: %w", err)
	}
	s.credential = stored
	s.derive(ctx)
	s.mu.Unlock()

	s.notify()
	return nil
}

// Reconcile re-reads the stored credential and re-derives the identity when
// the credential changed since the last derivation, e.g. after Login or
// after the API adapter deleted it on a 401.
func (s *Store) Reconcile(ctx context.Context) error {
	stored, err := s.credentials.Load(ctx)
	if err != nil {
		return fmt.Errorf("read stored credential: %w", err)
	}

	s.mu.Lock()
	if stored == s.credential && stored == s.derivedFor && !s.loading {
		s.mu.Unlock()
		return nil
	}
	s.credential = stored
	s.derive(ctx)
	s.mu.Unlock()

	s.notify()
	return nil
}

// derive must be called with s.mu held.
func (s *Store) derive(ctx context.Context) {
	defer func() {
		s.derivedFor = s.credential
		s.loading = false
	}()

	if s.credential == "" {
		s.identity = nil
		return
	}

	id, err := identity.Decode(s.credential)
	if err != nil {
		s.log.Warn(ctx, "stored credential is invalid, discarding", "error", err)
		if err := s.credentials.Delete(ctx); err != nil {
			s.log.Error(ctx, "failed to delete invalid credential", "error", err)
		}
		s.credential = ""
		s.identity = nil
		return
	}
	s.identity = id
}

// Login exchanges email and password for a credential and persists it. The
// identity is derived on the next Reconcile. On failure the error from the
// API is returned unchanged and the session is left as it was.
func (s *Store) Login(ctx context.Context, email, password string) error {
	env, err := api.Post[loginResponse](ctx, s.api, loginPath, loginRequest{Email: email, Password: password})
	if err != nil {
		return err
	}
	if err := env.Err(); err != nil {
		return err
	}

	token := env.Data.token()
	if token == "" {
		return fmt.Errorf("%w: login response carries no access token", common.ErrRejected)
	}

	if err := s.credentials.Save(ctx, token); err != nil {
		return fmt.Errorf("persist credential: %w", err)
	}

	s.mu.Lock()
	s.credential = token
	s.identity = nil
	s.loading = false
	s.mu.Unlock()

	s.log.Info(ctx, "logged in", "email", email)
	s.notify()
	return nil
}

// Register creates an account and then logs in with the same email and
// password. Login is not attempted when registration fails.
func (s *Store) Register(ctx context.Context, name, email, password string) error {
	env, err := api.Post[json.RawMessage](ctx, s.api, registerPath, registerRequest{Name: name, Email: email, Password: password})
	if err != nil {
		return err
	}
	if err := env.Err(); err != nil {
		return err
	}

	s.log.Info(ctx, "registered", "email", email)
	return s.Login(ctx, email, password)
}

// Logout forgets the credential and the identity. It makes no remote call
// and may be called any number of times. The in-memory state is cleared even
// when deleting the stored credential fails.
func (s *Store) Logout(ctx context.Context) error {
	err := s.credentials.Delete(ctx)

	s.mu.Lock()
	s.credential = ""
	s.identity = nil
	s.derivedFor = ""
	s.loading = false
	s.mu.Unlock()

	s.notify()
	if err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	snap := Snapshot{Credential: s.credential, Identity: s.identity, Loading: s.loading}
	switch {
	case s.loading:
		snap.State = StateInitializing
	case s.credential == "":
		snap.State = StateUnauthenticated
	default:
		snap.State = StateAuthenticated
	}
	return snap
}

func (s *Store) State() State                 { return s.Snapshot().State }
func (s *Store) Credential() string           { return s.Snapshot().Credential }
func (s *Store) Identity() *identity.Identity { return s.Snapshot().Identity }
func (s *Store) IsAuthenticated() bool        { return s.Snapshot().IsAuthenticated() }
func (s *Store) IsLoading() bool              { return s.Snapshot().IsLoading() }

// Subscribe registers fn to be called with a fresh Snapshot after every
// state change. The returned function removes the subscription.
func (s *Store) Subscribe(fn func(Snapshot)) func() {
	s.subsMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subsMu.Unlock()

	return func() {
		s.subsMu.Lock()
		delete(s.subs, id)
		s.subsMu.Unlock()
	}
}

// Close drops all subscribers.
func (s *Store) Close() {
	s.subsMu.Lock()
	s.subs = make(map[int]func(Snapshot))
	s.subsMu.Unlock()
}

func (s *Store) notify() {
	snap := s.Snapshot()

	s.subsMu.Lock()
	fns := make([]func(Snapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subsMu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}
