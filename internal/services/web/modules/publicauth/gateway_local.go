package publicauth

import (
	"context"
	"errors"
	"fmt"

	"github.com/louisbranch/portfolio.space/internal/services/auth/credential"
	"github.com/louisbranch/portfolio.space/internal/services/auth/token"
	"github.com/louisbranch/portfolio.space/internal/services/web/session"
)

// CredentialVerifier checks an email/password pair.
type CredentialVerifier interface {
	Verify(ctx context.Context, email, password string) (credential.Identity, error)
}

// SessionManager starts and destroys sessions.
type SessionManager interface {
	Start(ctx context.Context, subject token.Subject) (session.Session, error)
	session.Destroyer
}

type localAuthGateway struct {
	credentials CredentialVerifier
	sessions    SessionManager
}

// NewLocalGateway returns an AuthGateway backed by in-process credential
// and session services.
func NewLocalGateway(credentials CredentialVerifier, sessions SessionManager) AuthGateway {
	if credentials == nil || sessions == nil {
		return unavailableAuthGateway{}
	}
	return localAuthGateway{credentials: credentials, sessions: sessions}
}

func (g localAuthGateway) SignIn(ctx context.Context, email, password string) (session.Session, error) {
	identity, err := g.credentials.Verify(ctx, email, password)
	if err != nil {
		if errors.Is(err, credential.ErrInvalidCredentials) {
			return session.Session{}, fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
		}
		return session.Session{}, fmt.Errorf("verify credential: %w", err)
	}
	created, err := g.sessions.Start(ctx, token.Subject{ID: identity.ID, Name: identity.Name, Email: identity.Email})
	if err != nil {
		return session.Session{}, fmt.Errorf("start session: %w", err)
	}
	return created, nil
}

func (g localAuthGateway) SignOut(ctx context.Context, sessionID string) error {
	return g.sessions.DestroySession(ctx, sessionID)
}
