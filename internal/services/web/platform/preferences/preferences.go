// Package preferences stores display preferences in a browser cookie.
package preferences

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/louisbranch/portfolio.space/internal/services/web/i18n"
	"github.com/louisbranch/portfolio.space/internal/services/web/platform/requestmeta"
)

// CookieName is the preferences cookie.
const CookieName = "portfolio_prefs"

const maxAge = 365 * 24 * time.Hour

// Preferences are the user-adjustable display settings.
type Preferences struct {
	DarkMode           bool          `json:"dark_mode"`
	EmailNotifications bool          `json:"email_notifications"`
	Currency           i18n.Currency `json:"currency"`
}

// Default returns the preferences used before a user saves any.
func Default() Preferences {
	return Preferences{EmailNotifications: true, Currency: i18n.USD}
}

// Read returns the stored preferences, or Default when the cookie is
// missing or unreadable.
func Read(r *http.Request) Preferences {
	if r == nil {
		return Default()
	}
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return Default()
	}
	decoded, err := base64.RawURLEncoding.DecodeString(strings.TrimSpace(cookie.Value))
	if err != nil {
		return Default()
	}
	var prefs Preferences
	if err := json.Unmarshal(decoded, &prefs); err != nil {
		return Default()
	}
	return normalize(prefs)
}

// Write persists prefs.
func Write(w http.ResponseWriter, r *http.Request, prefs Preferences, policy requestmeta.Policy) {
	if w == nil {
		return
	}
	payload, err := json.Marshal(normalize(prefs))
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    base64.RawURLEncoding.EncodeToString(payload),
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   policy.IsHTTPS(r),
		SameSite: http.SameSiteLaxMode,
	})
}

func normalize(prefs Preferences) Preferences {
	currency, ok := i18n.ParseCurrency(string(prefs.Currency))
	if !ok {
		currency = i18n.USD
	}
	prefs.Currency = currency
	return prefs
}
