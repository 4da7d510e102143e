// Package module defines the feature contract used by web composition.
package module

import (
	"net/http"

	"github.com/louisbranch/portfolio.space/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/portfolio.space/internal/services/web/session"
	"go.uber.org/zap"
)

// ResolveSession resolves the session state used to render a request.
type ResolveSession func(*http.Request) session.State

// Dependencies carries the request-scoped collaborators shared by modules.
type Dependencies struct {
	ResolveSession ResolveSession
	RequestMeta    requestmeta.Policy
	Logger         *zap.Logger
}

// SessionState resolves r, treating a missing resolver as an absent session.
func (d Dependencies) SessionState(r *http.Request) session.State {
	if d.ResolveSession == nil || r == nil {
		return session.Absent()
	}
	return d.ResolveSession(r)
}

// Log returns the configured logger or a no-op logger.
func (d Dependencies) Log() *zap.Logger {
	if d.Logger == nil {
		return zap.NewNop()
	}
	return d.Logger
}

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount() (Mount, error)
}

// HealthReporter is an optional interface for modules whose gateways can
// report availability.
type HealthReporter interface {
	Healthy() bool
}
