// Package identity derives the signed-in user's attributes from the
// credential payload.
//
// The payload segment is decoded without verifying the signature: the API
// verifies every request, the client only uses the claims for display and
// for local role checks.
package identity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/jobboard/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Identity is the user described by a credential.
type Identity struct {
	ID        string
	Email     string
	Role      Role
	Name      string
	ExpiresAt time.Time
}

// DisplayName returns Name, or Email when the payload had no name.
func (i *Identity) DisplayName() string {
	if i.Name != "" {
		return i.Name
	}
	return i.Email
}

func (i *Identity) IsAdmin() bool { return i != nil && i.Role == RoleAdmin }

// CanManageVacancies reports whether the user may create, edit, toggle and
// delete vacancies.
func (i *Identity) CanManageVacancies() bool {
	return i != nil && (i.Role == RoleAdmin || i.Role == RoleManager)
}

// CanApply reports whether the user may submit applications.
func (i *Identity) CanApply() bool { return i != nil && i.Role == RoleCandidate }

// Claims is the credential payload. sub may be a string or a number.
type Claims struct {
	jwt.RegisteredClaims
	Subject subject `json:"sub"`
	Email   string  `json:"email"`
	Role    string  `json:"role"`
	Name    string  `json:"name,omitempty"`
}

type subject string

func (s *subject) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = subject(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("sub must be a string or number: %w", err)
	}
	*s = subject(n.String())
	return nil
}

var parser = jwt.NewParser(jwt.WithPaddingAllowed())

// Decode derives an Identity from a credential of the form
// header.payload.signature. Any structural problem, a missing subject or an
// unknown role yields an error wrapping common.ErrInvalidCredential.
func Decode(credential string) (*Identity, error) {
	parts := strings.Split(credential, ".")
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: expected 3 segments, got %d", common.ErrInvalidCredential, len(parts))
	}

	raw, err := parser.DecodeSegment(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: payload encoding: %v", common.ErrInvalidCredential, err)
	}

	var c Claims
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("%w: payload json: %v", common.ErrInvalidCredential, err)
	}

	if c.Subject == "" {
		return nil, fmt.Errorf("%w: missing sub", common.ErrInvalidCredential)
	}

	role, ok := ParseRole(c.Role)
	if !ok {
		return nil, fmt.Errorf("%w: unknown role %q", common.ErrInvalidCredential, c.Role)
	}

	id := &Identity{
		ID:    string(c.Subject),
		Email: c.Email,
		Role:  role,
		Name:  c.Name,
	}
	if c.ExpiresAt != nil {
		id.ExpiresAt = c.ExpiresAt.Time
	}
	return id, nil
}
