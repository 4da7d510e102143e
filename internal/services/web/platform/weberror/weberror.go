// Package weberror renders shared error responses for web modules.
package weberror

import (
	"net/http"
	"strings"

	"github.com/louisbranch/portfolio.space/internal/services/web/module"
	apperrors "github.com/louisbranch/portfolio.space/internal/services/web/platform/errors"
	"github.com/louisbranch/portfolio.space/internal/services/web/platform/httpx"
	"github.com/louisbranch/portfolio.space/internal/services/web/platform/pagerender"
	"github.com/louisbranch/portfolio.space/internal/services/web/templates"
	"go.uber.org/zap"
)

// ShouldRenderAppError reports whether status should use error-page UX.
func ShouldRenderAppError(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe localized error message.
func PublicMessage(loc templates.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" {
				return localized
			}
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	if text := strings.TrimSpace(http.StatusText(statusCode)); text != "" {
		return text
	}
	return http.StatusText(http.StatusInternalServerError)
}

// WriteAppError writes a localized error page. Signed-in visitors see it
// inside the shell; everyone else gets the public layout.
func WriteAppError(w http.ResponseWriter, r *http.Request, statusCode int, message string, deps module.Dependencies) {
	if w == nil {
		return
	}
	if !ShouldRenderAppError(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	pc := pagerender.Resolve(w, r, deps)
	loc := pc.Localizer()
	fragment := templates.ErrorState(statusCode, message, loc)
	title := templates.ErrorPageTitle(statusCode, loc)

	var err error
	if _, ok := pc.State.Session(); ok {
		err = pagerender.WriteAppPage(w, r, deps, pc, pagerender.AppPage{Title: title, StatusCode: statusCode, Fragment: fragment})
	} else {
		err = pagerender.WritePublicPage(w, r, pc, pagerender.PublicPage{Title: title, StatusCode: statusCode, Body: fragment})
	}
	if err != nil {
		deps.Log().Error("render error page", zap.Int("status", statusCode), zap.Error(err))
		http.Error(w, http.StatusText(statusCode), statusCode)
	}
}

// WriteModuleError writes a module-safe localized error response.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error, deps module.Dependencies) {
	if w == nil || err == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode >= http.StatusInternalServerError {
		deps.Log().Error("module request failed",
			zap.String("path", requestPath(r)),
			zap.String("request_id", httpx.RequestIDFrom(r)),
			zap.Error(err),
		)
	}
	pc := pagerender.Resolve(w, r, deps)
	message := PublicMessage(pc.Localizer(), err)
	if ShouldRenderAppError(statusCode) {
		WriteAppError(w, r, statusCode, message, deps)
		return
	}
	http.Error(w, message, statusCode)
}

func requestPath(r *http.Request) string {
	if r == nil || r.URL == nil {
		return ""
	}
	return r.URL.Path
}
