// Package sessioncookie reads and writes the browser session cookie.
package sessioncookie

import (
	"net/http"
	"strings"
	"time"

	"github.com/louisbranch/portfolio.space/internal/services/web/platform/requestmeta"
)

// Name is the session cookie name.
const Name = "portfolio_session"

// Read returns the trimmed session id from r when present.
func Read(r *http.Request) (string, bool) {
	if r == nil {
		return "", false
	}
	cookie, err := r.Cookie(Name)
	if err != nil {
		return "", false
	}
	value := strings.TrimSpace(cookie.Value)
	return value, value != ""
}

// Write sets an HttpOnly session cookie that expires with the session.
func Write(w http.ResponseWriter, r *http.Request, sessionID string, expiresAt time.Time, policy requestmeta.Policy) {
	if w == nil {
		return
	}
	cookie := base(r, policy)
	cookie.Value = strings.TrimSpace(sessionID)
	if !expiresAt.IsZero() {
		cookie.Expires = expiresAt.UTC()
	}
	http.SetCookie(w, cookie)
}

// Clear expires the session cookie.
func Clear(w http.ResponseWriter, r *http.Request, policy requestmeta.Policy) {
	if w == nil {
		return
	}
	cookie := base(r, policy)
	cookie.MaxAge = -1
	http.SetCookie(w, cookie)
}

func base(r *http.Request, policy requestmeta.Policy) *http.Cookie {
	return &http.Cookie{
		Name:     Name,
		Path:     "/",
		HttpOnly: true,
		Secure:   policy.IsHTTPS(r),
		SameSite: http.SameSiteLaxMode,
	}
}
