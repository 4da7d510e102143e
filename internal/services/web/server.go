package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/louisbranch/portfolio.space/internal/platform/logging"
	"github.com/louisbranch/portfolio.space/internal/platform/metrics"
	"github.com/louisbranch/portfolio.space/internal/platform/timeouts"
	"github.com/louisbranch/portfolio.space/internal/services/web/app"
	"github.com/louisbranch/portfolio.space/internal/services/web/gate"
	"github.com/louisbranch/portfolio.space/internal/services/web/module"
	"github.com/louisbranch/portfolio.space/internal/services/web/modules"
	"github.com/louisbranch/portfolio.space/internal/services/web/modules/publicauth"
	"github.com/louisbranch/portfolio.space/internal/services/web/platform/httpx"
	"github.com/louisbranch/portfolio.space/internal/services/web/platform/ratelimit"
	"github.com/louisbranch/portfolio.space/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/portfolio.space/internal/services/web/routepath"
	"github.com/louisbranch/portfolio.space/internal/services/web/session"
	"github.com/louisbranch/portfolio.space/internal/services/web/static"
)

// Config defines the inputs for the web server.
type Config struct {
	HTTPAddr string
	// Policy is the gate route table. Nil uses gate.DefaultConfig.
	Policy      *gate.Policy
	RequestMeta requestmeta.Policy
	Sessions    *session.Manager
	// Credentials verifies login submissions. Nil leaves login unavailable.
	Credentials publicauth.CredentialVerifier
	// Portfolio backs the protected areas. Nil leaves them unavailable.
	Portfolio  modules.PortfolioBackend
	LoginLimit ratelimit.Config
	Logger     *zap.Logger
	// Metrics records gate, login, and request counters and is served at
	// /metrics when set.
	Metrics *metrics.Registry
	Tracer  trace.Tracer
	Now     func() time.Time
}

// Server hosts the web HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	logger     *zap.Logger
}

// NewHandler builds the complete request pipeline: request IDs, panic
// recovery, access logging, the session gate, and the module tree.
func NewHandler(config Config) (http.Handler, error) {
	if config.Sessions == nil {
		return nil, errors.New("session manager is required")
	}
	logger := logging.OrNop(config.Logger)
	policy := config.Policy
	if policy == nil {
		var err error
		policy, err = gate.NewPolicy(gate.DefaultConfig())
		if err != nil {
			return nil, fmt.Errorf("default route policy: %w", err)
		}
	}

	middleware, err := gate.NewMiddleware(policy, gate.Options{
		Sessions: config.Sessions,
		Logger:   logger.Named("gate"),
		Recorder: config.Metrics,
		Tracer:   config.Tracer,
	})
	if err != nil {
		return nil, fmt.Errorf("build gate: %w", err)
	}

	deps := modules.Dependencies{
		Module: module.Dependencies{
			ResolveSession: config.Sessions.State,
			RequestMeta:    config.RequestMeta,
			Logger:         logger,
		},
		Policy:        policy,
		Portfolio:     config.Portfolio,
		LoginLimiter:  ratelimit.New(config.LoginLimit),
		LoginRecorder: config.Metrics,
		Now:           config.Now,
	}
	if config.Credentials != nil {
		deps.Auth = publicauth.NewLocalGateway(config.Credentials, config.Sessions)
	}

	public := modules.DefaultPublicModules(deps)
	protected := modules.DefaultProtectedModules(deps)
	logModuleHealth(logger, append(append([]modules.Module(nil), public...), protected...))

	root, err := app.BuildRootHandler(app.Config{
		Policy:           policy,
		Gate:             middleware,
		RequestMeta:      config.RequestMeta,
		PublicModules:    public,
		ProtectedModules: protected,
		Assets:           static.FS,
	})
	if err != nil {
		return nil, fmt.Errorf("compose modules: %w", err)
	}

	mux := http.NewServeMux()
	if config.Metrics != nil {
		mux.Handle(http.MethodGet+" "+routepath.Metrics, config.Metrics.Handler())
	}
	mux.Handle(routepath.Root, root)

	return httpx.Chain(mux,
		httpx.RequestID(),
		httpx.RecoverPanic(logger),
		httpx.AccessLog(logger.Named("http"), config.Metrics),
	), nil
}

func logModuleHealth(logger *zap.Logger, mods []modules.Module) {
	for _, m := range mods {
		reporter, ok := m.(module.HealthReporter)
		if !ok {
			continue
		}
		if !reporter.Healthy() {
			logger.Warn("module running in degraded mode", zap.String("module", m.ID()))
		}
	}
}

// NewServer builds the web server for config.
func NewServer(config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(config)
	if err != nil {
		return nil, err
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
			IdleTimeout:       timeouts.Idle,
		},
		logger: logging.OrNop(config.Logger),
	}, nil
}

// ListenAndServe runs the HTTP server until the context ends.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	s.logger.Info("web listening", zap.String("addr", s.httpAddr))
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		<-serveErr
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
