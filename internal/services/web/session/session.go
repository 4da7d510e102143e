// Package session models authenticated browser sessions and resolves them
// from requests.
package session

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"
)

var (
	// ErrNotFound reports an unknown or already-destroyed session id.
	ErrNotFound = errors.New("session not found")
	// ErrExpired reports a session past its expiry.
	ErrExpired = errors.New("session expired")
	// ErrNoSession reports a request that carries no session cookie.
	ErrNoSession = errors.New("no session cookie")
)

// Session is an authenticated browser session.
type Session struct {
	ID          string
	Subject     string
	DisplayName string
	Email       string
	// AccessToken is the bearer credential forwarded to data gateways.
	AccessToken string
	ExpiresAt   time.Time
}

// Expired reports whether the session is no longer valid at now.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

func (s Session) validate() error {
	if strings.TrimSpace(s.Subject) == "" {
		return errors.New("session subject is required")
	}
	if s.ExpiresAt.IsZero() {
		return errors.New("session expiry is required")
	}
	return nil
}

// Store persists sessions by id.
type Store interface {
	// Create assigns an id to s and stores it.
	Create(ctx context.Context, s Session) (Session, error)
	// Get returns ErrNotFound or ErrExpired when the id cannot be used.
	Get(ctx context.Context, id string) (Session, error)
	// Delete is idempotent.
	Delete(ctx context.Context, id string) error
}

// Resolver resolves the session attached to a request. ErrNoSession means
// the request carries none.
type Resolver interface {
	ResolveRequest(r *http.Request) (Session, error)
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func(r *http.Request) (Session, error)

// ResolveRequest calls f(r).
func (f ResolverFunc) ResolveRequest(r *http.Request) (Session, error) {
	return f(r)
}

// Destroyer ends a session.
type Destroyer interface {
	DestroySession(ctx context.Context, sessionID string) error
}
