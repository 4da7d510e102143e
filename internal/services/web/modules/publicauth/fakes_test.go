package publicauth

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/louisbranch/portfolio.space/internal/services/web/module"
	"github.com/louisbranch/portfolio.space/internal/services/web/session"
)

// fakeGateway implements AuthGateway with configurable results and call tracking.
type fakeGateway struct {
	mu         sync.Mutex
	session    session.Session
	signInErr  error
	signOutErr error
	signedOut  []string
	emails     []string
}

func (f *fakeGateway) SignIn(_ context.Context, email, _ string) (session.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.emails = append(f.emails, email)
	if f.signInErr != nil {
		return session.Session{}, f.signInErr
	}
	return f.session, nil
}

func (f *fakeGateway) SignOut(_ context.Context, sessionID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.signedOut = append(f.signedOut, sessionID)
	return f.signOutErr
}

type fakeRecorder struct {
	mu      sync.Mutex
	results []string
}

func (f *fakeRecorder) ObserveLogin(result string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.results = append(f.results, result)
}

func (f *fakeRecorder) last() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.results) == 0 {
		return ""
	}
	return f.results[len(f.results)-1]
}

func testSession() session.Session {
	return session.Session{
		ID:          "sess-1",
		Subject:     "1",
		DisplayName: "Test User",
		Email:       "test@example.com",
		AccessToken: "tok123",
		ExpiresAt:   time.Now().Add(time.Hour),
	}
}

func signedInDeps() module.Dependencies {
	return module.Dependencies{ResolveSession: func(*http.Request) session.State {
		return session.Present(testSession())
	}}
}
