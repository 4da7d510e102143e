package publicauth

import (
	"net/http"
	"strings"

	"github.com/louisbranch/portfolio.space/internal/services/web/gate"
	"github.com/louisbranch/portfolio.space/internal/services/web/module"
	apperrors "github.com/louisbranch/portfolio.space/internal/services/web/platform/errors"
	"github.com/louisbranch/portfolio.space/internal/services/web/platform/httpx"
	"github.com/louisbranch/portfolio.space/internal/services/web/platform/publichandler"
	"github.com/louisbranch/portfolio.space/internal/services/web/platform/ratelimit"
	"github.com/louisbranch/portfolio.space/internal/services/web/platform/sessioncookie"
	"github.com/louisbranch/portfolio.space/internal/services/web/routepath"
	"github.com/louisbranch/portfolio.space/internal/services/web/templates"
	"go.uber.org/zap"
)

const maxLoginFormBytes = 16 << 10

const (
	loginResultSuccess     = "success"
	loginResultInvalid     = "invalid"
	loginResultRateLimited = "rate_limited"
	loginResultError       = "error"
)

type handlers struct {
	publichandler.Base
	service  service
	policy   *gate.Policy
	limiter  *ratelimit.Registry
	recorder LoginRecorder
}

func newHandlers(s service, deps module.Dependencies, policy *gate.Policy, limiter *ratelimit.Registry, recorder LoginRecorder) handlers {
	return handlers{
		Base:     publichandler.NewBase(deps),
		service:  s,
		policy:   policy,
		limiter:  limiter,
		recorder: recorder,
	}
}

func (h handlers) handleLanding(w http.ResponseWriter, r *http.Request) {
	if h.IsSignedIn(r) {
		httpx.WriteRedirect(w, r, h.policy.LandingPath())
		return
	}
	pc := h.PageContext(w, r)
	loc := pc.Localizer()
	h.WritePublicPage(w, r, pc, templates.T(loc, "landing.title"), http.StatusOK, landingView(loc, h.policy.LoginPath()))
}

func (h handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(h.service.healthBody()))
}

func (h handlers) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	form := loginForm{From: h.safeFrom(r.URL.Query().Get(h.policy.FromParam()))}
	h.renderLogin(w, r, form, http.StatusOK)
}

func (h handlers) handleLoginSubmit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxLoginFormBytes)
	if err := r.ParseForm(); err != nil {
		h.renderLogin(w, r, loginForm{ErrorKey: "login.error.invalid"}, http.StatusBadRequest)
		return
	}
	form := loginForm{
		Email: strings.TrimSpace(r.PostForm.Get("email")),
		From:  h.safeFrom(r.PostForm.Get(h.policy.FromParam())),
	}

	if !h.limiter.AllowRequest(r) {
		h.observe(loginResultRateLimited)
		form.ErrorKey = "login.error.rate_limited"
		h.renderLogin(w, r, form, http.StatusTooManyRequests)
		return
	}

	created, err := h.service.signIn(r.Context(), form.Email, r.PostForm.Get("password"))
	if err != nil {
		statusCode := apperrors.HTTPStatus(err)
		if statusCode == http.StatusUnauthorized {
			h.observe(loginResultInvalid)
		} else {
			h.observe(loginResultError)
			h.Logger().Warn("sign in failed", zap.String("request_id", httpx.RequestIDFrom(r)), zap.Error(err))
		}
		form.ErrorKey = apperrors.LocalizationKey(err)
		if form.ErrorKey == "" {
			form.ErrorKey = "login.error.unavailable"
		}
		h.renderLogin(w, r, form, statusCode)
		return
	}

	h.observe(loginResultSuccess)
	sessioncookie.Write(w, r, created.ID, created.ExpiresAt, h.Dependencies().RequestMeta)
	httpx.WriteRedirect(w, r, h.destination(form.From))
}

// handleLogout destroys the session best effort: a failed destroy is logged
// and the visitor is still signed out locally.
func (h handlers) handleLogout(w http.ResponseWriter, r *http.Request) {
	if sessionID, ok := sessioncookie.Read(r); ok {
		if err := h.service.signOut(r.Context(), sessionID); err != nil {
			h.Logger().Warn("destroy session failed", zap.String("request_id", httpx.RequestIDFrom(r)), zap.Error(err))
		}
	}
	sessioncookie.Clear(w, r, h.Dependencies().RequestMeta)
	httpx.WriteRedirect(w, r, routepath.Root)
}

func (h handlers) renderLogin(w http.ResponseWriter, r *http.Request, form loginForm, statusCode int) {
	pc := h.PageContext(w, r)
	loc := pc.Localizer()
	form.Action = h.policy.LoginPath()
	form.FromParam = h.policy.FromParam()
	h.WritePublicPage(w, r, pc, templates.T(loc, "login.title"), statusCode, loginView(loc, form))
}

func (h handlers) safeFrom(from string) string {
	from = strings.TrimSpace(from)
	if !h.policy.SafeReturnPath(from) {
		return ""
	}
	return from
}

func (h handlers) destination(from string) string {
	if from = h.safeFrom(from); from != "" {
		return from
	}
	return h.policy.LandingPath()
}

func (h handlers) observe(result string) {
	if h.recorder != nil {
		h.recorder.ObserveLogin(result)
	}
}
