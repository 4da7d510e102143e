package dashboard

import (
	"net/http"

	"github.com/louisbranch/portfolio.space/internal/services/web/module"
	"github.com/louisbranch/portfolio.space/internal/services/web/routepath"
)

// Option configures a dashboard module.
type Option func(*Module)

// WithGateway sets the dashboard gateway.
func WithGateway(g DashboardGateway) Option {
	return func(m *Module) { m.gateway = g }
}

// WithDependencies sets the shared request-scoped collaborators.
func WithDependencies(deps module.Dependencies) Option {
	return func(m *Module) { m.deps = deps }
}

// Module provides authenticated dashboard routes.
type Module struct {
	gateway DashboardGateway
	deps    module.Dependencies
}

// New returns a dashboard module configured by the given options.
// Without a gateway the module starts in degraded mode.
func New(opts ...Option) Module {
	var m Module
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// ID returns a stable module identifier.
func (Module) ID() string { return "dashboard" }

// Healthy reports whether the dashboard module has an operational gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires dashboard route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.gateway), m.deps)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.DashboardPrefix, Handler: mux}, nil
}
