package session

import "github.com/dmitrijs2005/jobboard/internal/client/identity"

// State is the phase of the session state machine.
type State int

const (
	StateInitializing State = iota
	StateUnauthenticated
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Snapshot is an immutable view of the session at one point in time.
type Snapshot struct {
	State      State
	Credential string
	Identity   *identity.Identity
	Loading    bool
}

// IsAuthenticated is true iff a credential is present.
func (s Snapshot) IsAuthenticated() bool { return s.Credential != "" }

// IsLoading is true until start-up has read the stored credential.
func (s Snapshot) IsLoading() bool { return s.Loading }
