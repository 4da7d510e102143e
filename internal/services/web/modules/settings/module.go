package settings

import (
	"net/http"

	"github.com/louisbranch/portfolio.space/internal/services/web/module"
	"github.com/louisbranch/portfolio.space/internal/services/web/routepath"
)

// Option configures a settings module.
type Option func(*Module)

// WithGateway sets the settings gateway.
func WithGateway(g SettingsGateway) Option {
	return func(m *Module) { m.gateway = g }
}

// WithDependencies sets the shared request-scoped collaborators.
func WithDependencies(deps module.Dependencies) Option {
	return func(m *Module) { m.deps = deps }
}

// Module provides authenticated settings routes.
type Module struct {
	gateway SettingsGateway
	deps    module.Dependencies
}

// New returns a settings module configured by the given options.
// Without a gateway the preferences form still works; only broker linking
// is degraded.
func New(opts ...Option) Module {
	var m Module
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// ID returns a stable module identifier.
func (Module) ID() string { return "settings" }

// Healthy reports whether the settings module has an operational gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires settings route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.gateway), m.deps)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.SettingsPrefix, Handler: mux}, nil
}
