// Package publichandler provides a shared base for unauthenticated web module handlers.
// It centralizes error handling, localization, and page rendering that would
// otherwise be duplicated across public modules.
package publichandler

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/portfolio.space/internal/services/web/module"
	"github.com/louisbranch/portfolio.space/internal/services/web/platform/pagerender"
	"github.com/louisbranch/portfolio.space/internal/services/web/platform/weberror"
	"go.uber.org/zap"
)

// Base provides shared error handling and page rendering for public modules.
type Base struct {
	deps module.Dependencies
}

// NewBase builds a public handler base.
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

// IsSignedIn reports whether r carries a present session.
func (b Base) IsSignedIn(r *http.Request) bool {
	_, ok := b.deps.SessionState(r).Session()
	return ok
}

// WritePublicPage renders body with the public layout.
func (b Base) WritePublicPage(w http.ResponseWriter, r *http.Request, pc pagerender.Context, title string, statusCode int, body templ.Component) {
	if err := pagerender.WritePublicPage(w, r, pc, pagerender.PublicPage{
		Title:      title,
		StatusCode: statusCode,
		Body:       body,
	}); err != nil {
		b.WriteError(w, r, err)
	}
}

// WriteNotFound renders a localized 404 page.
func (b Base) WriteNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, "", b.deps)
}

// WriteError renders a user-safe error response.
func (b Base) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteModuleError(w, r, err, b.deps)
}
