// Package web parses web command flags and launches the web service.
package web

import (
	"context"
	"crypto/rand"
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	entrypoint "github.com/louisbranch/portfolio.space/internal/platform/cmd"
	"github.com/louisbranch/portfolio.space/internal/platform/logging"
	"github.com/louisbranch/portfolio.space/internal/platform/metrics"
	"github.com/louisbranch/portfolio.space/internal/platform/otel"
	"github.com/louisbranch/portfolio.space/internal/services/auth/credential"
	"github.com/louisbranch/portfolio.space/internal/services/auth/token"
	"github.com/louisbranch/portfolio.space/internal/services/portfolio/sample"
	"github.com/louisbranch/portfolio.space/internal/services/web"
	"github.com/louisbranch/portfolio.space/internal/services/web/gate"
	"github.com/louisbranch/portfolio.space/internal/services/web/platform/ratelimit"
	"github.com/louisbranch/portfolio.space/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/portfolio.space/internal/services/web/session"
	sessionsqlite "github.com/louisbranch/portfolio.space/internal/services/web/session/sqlite"
)

// Config holds the web command configuration. Environment variables carry
// the PORTFOLIO_SPACE_ prefix.
type Config struct {
	HTTPAddr string `env:"WEB_HTTP_ADDR" envDefault:"localhost:8086"`
	// SessionDBPath selects the SQLite session store. Empty keeps sessions
	// in memory.
	SessionDBPath string `env:"WEB_SESSION_DB_PATH"`
	// SigningKey is the base64 HS256 key. Empty generates an ephemeral key,
	// so sessions end when the process restarts.
	SigningKey           string        `env:"SESSION_SIGNING_KEY"`
	SessionTTL           time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	SessionPurgeInterval time.Duration `env:"WEB_SESSION_PURGE_INTERVAL" envDefault:"10m"`
	// BootstrapUsers is a JSON array of credential.User. Empty installs the
	// default test account.
	BootstrapUsers      string        `env:"BOOTSTRAP_USERS"`
	RoutesConfig        string        `env:"WEB_ROUTES_CONFIG"`
	TrustForwardedProto bool          `env:"WEB_TRUST_FORWARDED_PROTO"`
	LoginRateEvery      time.Duration `env:"WEB_LOGIN_RATE_EVERY" envDefault:"12s"`
	LoginRateBurst      int           `env:"WEB_LOGIN_RATE_BURST" envDefault:"5"`
	LogLevel            string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat           string        `env:"LOG_FORMAT" envDefault:"json"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.SessionDBPath, "session-db", cfg.SessionDBPath, "SQLite session database path (empty keeps sessions in memory)")
	fs.DurationVar(&cfg.SessionTTL, "session-ttl", cfg.SessionTTL, "Session and bearer token lifetime")
	fs.StringVar(&cfg.RoutesConfig, "routes-config", cfg.RoutesConfig, "YAML route table for the session gate")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "Trust X-Forwarded-Proto from a TLS-terminating proxy")
	fs.DurationVar(&cfg.LoginRateEvery, "login-rate-every", cfg.LoginRateEvery, "Login attempt refill interval per client")
	fs.IntVar(&cfg.LoginRateBurst, "login-rate-burst", cfg.LoginRateBurst, "Login attempts allowed in a burst per client")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: json or console")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the web service and blocks until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	logger, err := logging.New(entrypoint.ServiceWeb, logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	return entrypoint.RunWithTelemetryAndOptions(ctx, entrypoint.ServiceWeb, entrypoint.RunOptions{Logger: logger}, func(ctx context.Context) error {
		return serve(ctx, cfg, logger)
	})
}

func serve(ctx context.Context, cfg Config, logger *zap.Logger) error {
	deps, err := openDependencies(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer deps.close()

	server, err := web.NewServer(deps.server)
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}
	if deps.purge != nil {
		purgeCtx, cancel := context.WithCancel(ctx)
		purgeDone := make(chan struct{})
		go func() {
			defer close(purgeDone)
			deps.purge(purgeCtx)
		}()
		defer func() {
			cancel()
			<-purgeDone
		}()
	}
	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve web: %w", err)
	}
	return nil
}

// dependencies holds the collaborators built from Config and the cleanup
// they need.
type dependencies struct {
	server web.Config
	purge  func(context.Context)
	close  func()
}

func openDependencies(ctx context.Context, cfg Config, logger *zap.Logger) (dependencies, error) {
	logger = logging.OrNop(logger)

	routes, err := gate.LoadConfig(cfg.RoutesConfig)
	if err != nil {
		return dependencies{}, fmt.Errorf("load route config: %w", err)
	}
	policy, err := gate.NewPolicy(routes)
	if err != nil {
		return dependencies{}, fmt.Errorf("route policy: %w", err)
	}

	key, err := signingKey(cfg.SigningKey, logger)
	if err != nil {
		return dependencies{}, err
	}
	signer, err := token.NewSigner(key, cfg.SessionTTL, nil)
	if err != nil {
		return dependencies{}, fmt.Errorf("init token signer: %w", err)
	}

	credentials, err := bootstrapCredentials(cfg.BootstrapUsers, logger)
	if err != nil {
		return dependencies{}, err
	}

	deps := dependencies{close: func() {}}
	var store session.Store
	if path := strings.TrimSpace(cfg.SessionDBPath); path != "" {
		sqliteStore, err := sessionsqlite.Open(ctx, path)
		if err != nil {
			return dependencies{}, fmt.Errorf("open session store: %w", err)
		}
		store = sqliteStore
		deps.close = func() {
			if err := sqliteStore.Close(); err != nil {
				logger.Warn("close session store", zap.Error(err))
			}
		}
		deps.purge = func(ctx context.Context) {
			purgeExpiredSessions(ctx, sqliteStore, cfg.SessionPurgeInterval, logger)
		}
	} else {
		store = session.NewMemoryStore(nil)
		logger.Info("sessions are kept in memory")
	}

	manager, err := session.NewManager(store, signer)
	if err != nil {
		deps.close()
		return dependencies{}, fmt.Errorf("init session manager: %w", err)
	}

	deps.server = web.Config{
		HTTPAddr:    cfg.HTTPAddr,
		Policy:      policy,
		RequestMeta: requestmeta.Policy{TrustForwardedProto: cfg.TrustForwardedProto},
		Sessions:    manager,
		Credentials: credentials,
		Portfolio:   sample.New(),
		LoginLimit:  ratelimit.Config{Every: cfg.LoginRateEvery, Burst: cfg.LoginRateBurst},
		Logger:      logger,
		Metrics:     metrics.New(),
		Tracer:      otel.Tracer(),
	}
	return deps, nil
}

func signingKey(raw string, logger *zap.Logger) ([]byte, error) {
	if raw = strings.TrimSpace(raw); raw != "" {
		key, err := token.DecodeKey(raw)
		if err != nil {
			return nil, fmt.Errorf("decode signing key: %w", err)
		}
		return key, nil
	}
	key := make([]byte, token.MinKeyBytes)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("generate signing key: %w", err)
	}
	logger.Warn("no signing key configured; sessions will not survive a restart")
	return key, nil
}

func bootstrapCredentials(raw string, logger *zap.Logger) (*credential.Store, error) {
	users, err := credential.ParseUsers(raw)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		users, err = credential.DefaultUsers(bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("default users: %w", err)
		}
		logger.Warn("no bootstrap users configured; installing the default test account",
			zap.String("email", credential.DefaultUserEmail))
	}
	store, err := credential.NewStore(users)
	if err != nil {
		return nil, fmt.Errorf("bootstrap users: %w", err)
	}
	return store, nil
}

type expiredSessionPurger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

func purgeExpiredSessions(ctx context.Context, store expiredSessionPurger, interval time.Duration, logger *zap.Logger) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := store.PurgeExpired(ctx)
			if err != nil {
				if !errors.Is(err, context.Canceled) {
					logger.Warn("purge expired sessions", zap.Error(err))
				}
				continue
			}
			if n > 0 {
				logger.Debug("purged expired sessions", zap.Int64("count", n))
			}
		}
	}
}
