package session

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/louisbranch/portfolio.space/internal/services/auth/token"
	"github.com/louisbranch/portfolio.space/internal/services/web/platform/sessioncookie"
)

func newTestManager(t *testing.T, now func() time.Time) *Manager {
	t.Helper()
	signer, err := token.NewSigner(bytes.Repeat([]byte("s"), token.MinKeyBytes), time.Hour, now)
	if err != nil {
		t.Fatalf("NewSigner() error = %v", err)
	}
	manager, err := NewManager(NewMemoryStore(now), signer)
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}
	return manager
}

func requestWithCookie(id string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	if id != "" {
		req.AddCookie(&http.Cookie{Name: sessioncookie.Name, Value: id})
	}
	return req
}

func TestManagerStartAndResolve(t *testing.T) {
	t.Parallel()

	manager := newTestManager(t, nil)
	started, err := manager.Start(context.Background(), token.Subject{ID: "1", Name: "Test User", Email: "test@example.com"})
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if started.AccessToken == "" {
		t.Fatal("Start() did not attach a token")
	}

	resolved, err := manager.ResolveRequest(requestWithCookie(started.ID))
	if err != nil {
		t.Fatalf("ResolveRequest() error = %v", err)
	}
	if resolved.DisplayName != "Test User" {
		t.Fatalf("DisplayName = %q, want %q", resolved.DisplayName, "Test User")
	}
	state := manager.State(requestWithCookie(started.ID))
	if _, ok := state.Session(); !ok {
		t.Fatalf("State() = %v, want present", state)
	}
}

func TestManagerResolveFailures(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := now
	manager := newTestManager(t, func() time.Time { return clock })
	started, err := manager.Start(context.Background(), token.Subject{ID: "1"})
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	if _, err := manager.ResolveRequest(requestWithCookie("")); !errors.Is(err, ErrNoSession) {
		t.Fatalf("no cookie error = %v, want ErrNoSession", err)
	}
	if _, err := manager.ResolveRequest(requestWithCookie("unknown")); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown id error = %v, want ErrNotFound", err)
	}

	clock = now.Add(2 * time.Hour)
	_, err = manager.ResolveRequest(requestWithCookie(started.ID))
	if !errors.Is(err, ErrExpired) {
		t.Fatalf("expired error = %v, want ErrExpired", err)
	}
	if state := manager.State(requestWithCookie(started.ID)); state != Absent() {
		t.Fatalf("State() = %v, want absent", state)
	}
}

func TestManagerRejectsTamperedToken(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore(nil)
	signer, _ := token.NewSigner(bytes.Repeat([]byte("s"), token.MinKeyBytes), time.Hour, nil)
	manager, _ := NewManager(store, signer)
	stored, err := store.Create(context.Background(), Session{
		Subject:     "1",
		AccessToken: "forged.token.value",
		ExpiresAt:   time.Now().Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	_, err = manager.ResolveSession(context.Background(), stored.ID)
	if !errors.Is(err, token.ErrTokenInvalid) {
		t.Fatalf("ResolveSession() error = %v, want ErrTokenInvalid", err)
	}
	if got := FailureReason(err); got != "invalid_token" {
		t.Fatalf("FailureReason() = %q, want %q", got, "invalid_token")
	}
}

func TestManagerDestroySession(t *testing.T) {
	t.Parallel()

	manager := newTestManager(t, nil)
	started, err := manager.Start(context.Background(), token.Subject{ID: "1"})
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := manager.DestroySession(context.Background(), started.ID); err != nil {
		t.Fatalf("DestroySession() error = %v", err)
	}
	if _, err := manager.ResolveSession(context.Background(), started.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("ResolveSession() error = %v, want ErrNotFound", err)
	}
}

func TestNewManagerRequiresDependencies(t *testing.T) {
	t.Parallel()

	signer, _ := token.NewSigner(bytes.Repeat([]byte("s"), token.MinKeyBytes), time.Hour, nil)
	if _, err := NewManager(nil, signer); err == nil {
		t.Fatal("expected missing store error")
	}
	if _, err := NewManager(NewMemoryStore(nil), nil); err == nil {
		t.Fatal("expected missing signer error")
	}
}

func TestFailureReason(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want string
	}{
		{err: nil, want: ""},
		{err: ErrNoSession, want: "no_session"},
		{err: ErrNotFound, want: "not_found"},
		{err: ErrExpired, want: "session_expired"},
		{err: token.ErrTokenExpired, want: "token_expired"},
		{err: context.DeadlineExceeded, want: "timeout"},
		{err: errors.New("disk I/O error"), want: "store_error"},
	}
	for _, tc := range tests {
		if got := FailureReason(tc.err); got != tc.want {
			t.Fatalf("FailureReason(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}

var _ Resolver = (*Manager)(nil)

func TestResolverFuncDelegates(t *testing.T) {
	t.Parallel()

	want := Session{ID: "s1", Subject: "1"}
	var resolver Resolver = ResolverFunc(func(*http.Request) (Session, error) { return want, nil })
	got, err := resolver.ResolveRequest(httptest.NewRequest(http.MethodGet, "/", nil))
	if err != nil {
		t.Fatalf("ResolveRequest() error = %v", err)
	}
	if got.ID != want.ID {
		t.Fatalf("ResolveRequest().ID = %q, want %q", got.ID, want.ID)
	}
}
