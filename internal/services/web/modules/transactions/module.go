package transactions

import (
	"net/http"
	"time"

	"github.com/louisbranch/portfolio.space/internal/services/web/module"
	"github.com/louisbranch/portfolio.space/internal/services/web/routepath"
)

// Option configures a transactions module.
type Option func(*Module)

// WithGateway sets the transactions gateway.
func WithGateway(g TransactionsGateway) Option {
	return func(m *Module) { m.gateway = g }
}

// WithDependencies sets the shared request-scoped collaborators.
func WithDependencies(deps module.Dependencies) Option {
	return func(m *Module) { m.deps = deps }
}

// WithClock sets the clock used to default the trade date.
func WithClock(now func() time.Time) Option {
	return func(m *Module) { m.now = now }
}

// Module provides the authenticated transaction list and entry form.
type Module struct {
	gateway TransactionsGateway
	deps    module.Dependencies
	now     func() time.Time
}

// New returns a transactions module configured by the given options.
func New(opts ...Option) Module {
	var m Module
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// ID returns a stable module identifier.
func (Module) ID() string { return "transactions" }

// Healthy reports whether the transactions module has an operational gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires transactions route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.gateway, m.now), m.deps)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.TransactionsPrefix, Handler: mux}, nil
}
