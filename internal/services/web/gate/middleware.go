package gate

import (
	"errors"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"

	"github.com/louisbranch/portfolio.space/internal/services/web/platform/httpx"
	"github.com/louisbranch/portfolio.space/internal/services/web/session"
)

// Recorder receives gate counters. *metrics.Registry satisfies it.
type Recorder interface {
	ObserveGateDecision(outcome string)
	ObserveResolutionFailure(reason string)
}

// Options configures Middleware.
type Options struct {
	// Sessions resolves the request's session. session.ErrNoSession means
	// the visitor is anonymous; any other error is a resolution failure that
	// is logged, counted, and then treated as anonymous.
	Sessions session.Resolver
	// Admit is a coarse admission hook consulted for guarded paths before
	// any redirect policy. Nil admits everything. Rejected requests get 403.
	Admit    func(*http.Request) bool
	Logger   *zap.Logger
	Recorder Recorder
	Tracer   trace.Tracer
}

// Middleware applies a Policy to every request.
type Middleware struct {
	policy   *Policy
	sessions session.Resolver
	admit    func(*http.Request) bool
	logger   *zap.Logger
	recorder Recorder
	tracer   trace.Tracer
}

// NewMiddleware builds the HTTP adapter for policy.
func NewMiddleware(policy *Policy, opts Options) (*Middleware, error) {
	if policy == nil {
		return nil, errors.New("gate policy is required")
	}
	if opts.Sessions == nil {
		return nil, errors.New("session resolver is required")
	}
	m := &Middleware{
		policy:   policy,
		sessions: opts.Sessions,
		admit:    opts.Admit,
		logger:   opts.Logger,
		recorder: opts.Recorder,
		tracer:   opts.Tracer,
	}
	if m.admit == nil {
		m.admit = func(*http.Request) bool { return true }
	}
	if m.logger == nil {
		m.logger = zap.NewNop()
	}
	if m.tracer == nil {
		m.tracer = noop.NewTracerProvider().Tracer("gate")
	}
	return m, nil
}

// Wrap returns next guarded by the gate.
func (m *Middleware) Wrap(next http.Handler) http.Handler {
	if next == nil {
		next = http.NotFoundHandler()
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The mux routes on the escaped path, so the gate must classify it too.
		escapedPath := r.URL.EscapedPath()
		if m.policy.Classify(escapedPath) == SectionNone {
			m.record(Bypass.String())
			next.ServeHTTP(w, r)
			return
		}

		ctx, span := m.tracer.Start(r.Context(), "gate.decide",
			trace.WithAttributes(attribute.String("http.route.path", r.URL.Path)))
		defer span.End()
		r = r.WithContext(ctx)

		if !m.admit(r) {
			span.SetAttributes(attribute.String("gate.outcome", "rejected"))
			m.record("rejected")
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		}

		req := Request{Path: escapedPath, RawQuery: r.URL.RawQuery}
		if s, ok := m.resolveSession(r, span); ok {
			req.Session = &s
		}
		decision := m.policy.Decide(req)
		span.SetAttributes(
			attribute.String("gate.section", decision.Section.String()),
			attribute.String("gate.outcome", decision.Outcome.String()),
			attribute.Bool("gate.session", req.Session != nil),
		)
		m.record(decision.Outcome.String())

		switch decision.Outcome {
		case Redirect:
			httpx.WriteRedirect(w, r, decision.Location)
		case PassThrough:
			if decision.Section == SectionProtected {
				r = forwardWithCredentials(r, decision.Header)
			}
			next.ServeHTTP(w, r)
		default:
			next.ServeHTTP(w, r)
		}
	})
}

func (m *Middleware) resolveSession(r *http.Request, span trace.Span) (session.Session, bool) {
	s, err := m.sessions.ResolveRequest(r)
	if err == nil {
		return s, true
	}
	if errors.Is(err, session.ErrNoSession) {
		return session.Session{}, false
	}
	reason := session.FailureReason(err)
	span.AddEvent("session.resolution_failed", trace.WithAttributes(attribute.String("reason", reason)))
	m.logger.Debug("session resolution failed",
		zap.String("path", r.URL.Path),
		zap.String("reason", reason),
		zap.String("request_id", httpx.RequestIDFrom(r)),
		zap.Error(err),
	)
	if m.recorder != nil {
		m.recorder.ObserveResolutionFailure(reason)
	}
	return session.Session{}, false
}

// forwardWithCredentials replaces any client-supplied Authorization header
// with the one the gate derived from the session.
func forwardWithCredentials(r *http.Request, header http.Header) *http.Request {
	forwarded := r.Clone(r.Context())
	forwarded.Header.Del("Authorization")
	for key, values := range header {
		forwarded.Header[key] = append([]string(nil), values...)
	}
	return forwarded
}

func (m *Middleware) record(outcome string) {
	if m.recorder != nil {
		m.recorder.ObserveGateDecision(outcome)
	}
}
