package publicauth

import (
	"net/http"
	"strings"

	"github.com/louisbranch/portfolio.space/internal/services/web/gate"
	"github.com/louisbranch/portfolio.space/internal/services/web/module"
	"github.com/louisbranch/portfolio.space/internal/services/web/platform/ratelimit"
	"github.com/louisbranch/portfolio.space/internal/services/web/routepath"
)

// LoginRecorder counts login attempts by result.
type LoginRecorder interface {
	ObserveLogin(result string)
}

// Option configures a public module.
type Option func(*Module)

// WithGateway sets the auth gateway.
func WithGateway(g AuthGateway) Option {
	return func(m *Module) { m.gateway = g }
}

// WithDependencies sets the shared rendering dependencies.
func WithDependencies(deps module.Dependencies) Option {
	return func(m *Module) { m.deps = deps }
}

// WithPolicy sets the route policy that names the login, landing, and
// return-destination routes.
func WithPolicy(p *gate.Policy) Option {
	return func(m *Module) { m.policy = p }
}

// WithLoginLimiter throttles login submissions.
func WithLoginLimiter(l *ratelimit.Registry) Option {
	return func(m *Module) { m.limiter = l }
}

// WithRecorder counts login attempts.
func WithRecorder(r LoginRecorder) Option {
	return func(m *Module) { m.recorder = r }
}

// Module provides unauthenticated root and auth routes.
type Module struct {
	gateway        AuthGateway
	deps           module.Dependencies
	policy         *gate.Policy
	limiter        *ratelimit.Registry
	recorder       LoginRecorder
	id             string
	prefix         string
	registerRoutes func(*http.ServeMux, handlers)
}

// NewShell returns the root module: landing page, health, and logout.
func NewShell(opts ...Option) Module {
	m := newModule("public", opts)
	m.prefix = routepath.Root
	m.registerRoutes = registerShellRoutes
	return m
}

// NewLogin returns the auth-section module serving the login form.
func NewLogin(opts ...Option) Module {
	m := newModule("public-auth", opts)
	m.prefix = m.routePolicy().Config().AuthPrefix + "/"
	m.registerRoutes = registerLoginRoutes
	return m
}

func newModule(id string, opts []Option) Module {
	m := Module{id: id}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// ID returns a stable identifier for diagnostics and startup logs.
func (m Module) ID() string {
	id := strings.TrimSpace(m.id)
	if id == "" {
		return "public"
	}
	return id
}

// Healthy reports whether the module has an operational auth gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableAuthGateway)
	return !unavailable
}

// Mount wires public routes under the module prefix.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newServiceWithGateway(m.gateway), m.deps, m.routePolicy(), m.limiter, m.recorder)
	if m.registerRoutes != nil {
		m.registerRoutes(mux, h)
	} else {
		registerShellRoutes(mux, h)
	}
	prefix := strings.TrimSpace(m.prefix)
	if prefix == "" {
		prefix = routepath.Root
	}
	return module.Mount{Prefix: prefix, Handler: mux}, nil
}

func (m Module) routePolicy() *gate.Policy {
	if m.policy != nil {
		return m.policy
	}
	policy, err := gate.NewPolicy(gate.DefaultConfig())
	if err != nil {
		panic("publicauth: default route policy is invalid: " + err.Error())
	}
	return policy
}
