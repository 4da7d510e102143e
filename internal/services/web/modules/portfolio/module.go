package portfolio

import (
	"net/http"

	"github.com/louisbranch/portfolio.space/internal/services/web/module"
	"github.com/louisbranch/portfolio.space/internal/services/web/routepath"
)

// Option configures a portfolio module.
type Option func(*Module)

// WithGateway sets the holdings gateway.
func WithGateway(g HoldingsGateway) Option {
	return func(m *Module) { m.gateway = g }
}

// WithDependencies sets the shared request-scoped collaborators.
func WithDependencies(deps module.Dependencies) Option {
	return func(m *Module) { m.deps = deps }
}

// Module provides the authenticated holdings grid.
type Module struct {
	gateway HoldingsGateway
	deps    module.Dependencies
}

// New returns a portfolio module configured by the given options.
func New(opts ...Option) Module {
	var m Module
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// ID returns a stable module identifier.
func (Module) ID() string { return "portfolio" }

// Healthy reports whether the portfolio module has an operational gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires portfolio route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.gateway), m.deps)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.PortfolioPrefix, Handler: mux}, nil
}
