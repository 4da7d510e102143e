package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/louisbranch/portfolio.space/internal/platform/timeouts"
	"github.com/louisbranch/portfolio.space/internal/services/auth/token"
	"github.com/louisbranch/portfolio.space/internal/services/web/platform/sessioncookie"
)

// TokenSigner issues and verifies session bearer tokens.
type TokenSigner interface {
	Issue(subject token.Subject) (string, time.Time, error)
	Verify(raw string) (token.Claims, error)
}

// Manager ties a Store to the bearer tokens its sessions carry. A stored
// session only resolves while its token still verifies.
type Manager struct {
	store  Store
	signer TokenSigner
}

// NewManager builds a Manager.
func NewManager(store Store, signer TokenSigner) (*Manager, error) {
	if store == nil {
		return nil, errors.New("session store is required")
	}
	if signer == nil {
		return nil, errors.New("token signer is required")
	}
	return &Manager{store: store, signer: signer}, nil
}

// Start issues a token for subject and stores a session that expires with it.
func (m *Manager) Start(ctx context.Context, subject token.Subject) (Session, error) {
	raw, expiresAt, err := m.signer.Issue(subject)
	if err != nil {
		return Session{}, fmt.Errorf("issue token: %w", err)
	}
	created, err := m.store.Create(ctx, Session{
		Subject:     subject.ID,
		DisplayName: subject.Name,
		Email:       subject.Email,
		AccessToken: raw,
		ExpiresAt:   expiresAt,
	})
	if err != nil {
		return Session{}, fmt.Errorf("store session: %w", err)
	}
	return created, nil
}

// ResolveSession loads sessionID and verifies its bearer token.
func (m *Manager) ResolveSession(ctx context.Context, sessionID string) (Session, error) {
	if sessionID == "" {
		return Session{}, ErrNoSession
	}
	s, err := m.store.Get(ctx, sessionID)
	if err != nil {
		return Session{}, err
	}
	claims, err := m.signer.Verify(s.AccessToken)
	if err != nil {
		return Session{}, err
	}
	if claims.Subject.ID != s.Subject {
		return Session{}, fmt.Errorf("%w: subject mismatch", token.ErrTokenInvalid)
	}
	return s, nil
}

// ResolveRequest implements Resolver using r's session cookie.
func (m *Manager) ResolveRequest(r *http.Request) (Session, error) {
	id, ok := sessioncookie.Read(r)
	if !ok {
		return Session{}, ErrNoSession
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.SessionLookup)
	defer cancel()
	return m.ResolveSession(ctx, id)
}

// State resolves r into Present or Absent. Errors count as absent.
func (m *Manager) State(r *http.Request) State {
	s, err := m.ResolveRequest(r)
	if err != nil {
		return Absent()
	}
	return Present(s)
}

// DestroySession implements Destroyer.
func (m *Manager) DestroySession(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := m.store.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// FailureReason classifies a resolution error for logs and metrics.
func FailureReason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNoSession):
		return "no_session"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrExpired):
		return "session_expired"
	case errors.Is(err, token.ErrTokenExpired):
		return "token_expired"
	case errors.Is(err, token.ErrTokenInvalid):
		return "invalid_token"
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return "timeout"
	default:
		return "store_error"
	}
}
