// Package modulehandler provides a composable base for protected web module handlers.
//
// Protected modules share request-scoped rendering, credential forwarding,
// redirects, and error handling. Modules embed Base rather than duplicating it.
package modulehandler

import (
	"context"
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/portfolio.space/internal/services/web/module"
	apperrors "github.com/louisbranch/portfolio.space/internal/services/web/platform/errors"
	"github.com/louisbranch/portfolio.space/internal/services/web/platform/flash"
	"github.com/louisbranch/portfolio.space/internal/services/web/platform/httpx"
	"github.com/louisbranch/portfolio.space/internal/services/web/platform/pagerender"
	"github.com/louisbranch/portfolio.space/internal/services/web/platform/webctx"
	"github.com/louisbranch/portfolio.space/internal/services/web/platform/weberror"
	"go.uber.org/zap"
)

// Base carries the shared dependencies used by protected module handlers.
type Base struct {
	deps module.Dependencies
}

// NewBase builds a handler base from module dependencies.
func NewBase(deps module.Dependencies) Base {
	return Base{deps: deps}
}

// Dependencies returns the shared module dependencies.
func (b Base) Dependencies() module.Dependencies {
	return b.deps
}

// Logger returns the module logger.
func (b Base) Logger() *zap.Logger {
	return b.deps.Log()
}

// PageContext resolves language, preferences, and session state for r.
func (b Base) PageContext(w http.ResponseWriter, r *http.Request) pagerender.Context {
	return pagerender.Resolve(w, r, b.deps)
}

// GatewayContext returns r's context carrying the forwarded bearer token.
// Requests without one fail with an unauthorized error so gateways are never
// called anonymously.
func (b Base) GatewayContext(r *http.Request) (context.Context, error) {
	ctx := webctx.WithRequestAccessToken(r)
	if webctx.AccessToken(ctx) == "" {
		return ctx, apperrors.E(apperrors.KindUnauthorized, "missing forwarded bearer token")
	}
	return ctx, nil
}

// WritePage renders fragment inside the protected shell.
func (b Base) WritePage(w http.ResponseWriter, r *http.Request, pc pagerender.Context, title string, statusCode int, fragment templ.Component) {
	if err := pagerender.WriteAppPage(w, r, b.deps, pc, pagerender.AppPage{
		Title:      title,
		StatusCode: statusCode,
		Fragment:   fragment,
	}); err != nil {
		b.WriteError(w, r, err)
	}
}

// WriteError renders a localized module error response.
func (b Base) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteModuleError(w, r, err, b.deps)
}

// WriteNotFound renders a 404 error page within the shell.
func (b Base) WriteNotFound(w http.ResponseWriter, r *http.Request) {
	b.WriteError(w, r, apperrors.E(apperrors.KindNotFound, "page not found"))
}

// RedirectWithNotice stores notice and redirects to location.
func (b Base) RedirectWithNotice(w http.ResponseWriter, r *http.Request, location string, notice flash.Notice) {
	flash.Write(w, r, notice, b.deps.RequestMeta)
	httpx.WriteRedirect(w, r, location)
}
