// Package flash carries one-time notices across a redirect in a cookie.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/louisbranch/portfolio.space/internal/services/web/platform/requestmeta"
)

// CookieName is the flash notice cookie.
const CookieName = "portfolio_flash"

// Kind selects notice styling.
type Kind string

const (
	KindSuccess Kind = "success"
	KindInfo    Kind = "info"
	KindWarning Kind = "warning"
	KindError   Kind = "error"
)

// Notice references a localized message by key.
type Notice struct {
	Kind Kind   `json:"kind"`
	Key  string `json:"key"`
}

// Success builds a success notice for key.
func Success(key string) Notice {
	return Notice{Kind: KindSuccess, Key: key}
}

// Write stores notice for the next page render. Invalid notices are dropped.
func Write(w http.ResponseWriter, r *http.Request, notice Notice, policy requestmeta.Policy) {
	if w == nil {
		return
	}
	notice, ok := normalize(notice)
	if !ok {
		return
	}
	payload, err := json.Marshal(notice)
	if err != nil {
		return
	}
	cookie := base(r, policy)
	cookie.Value = base64.RawURLEncoding.EncodeToString(payload)
	http.SetCookie(w, cookie)
}

// Take reads the pending notice and expires its cookie.
func Take(w http.ResponseWriter, r *http.Request, policy requestmeta.Policy) (Notice, bool) {
	if r == nil {
		return Notice{}, false
	}
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return Notice{}, false
	}
	if w != nil {
		expired := base(r, policy)
		expired.MaxAge = -1
		http.SetCookie(w, expired)
	}
	decoded, err := base64.RawURLEncoding.DecodeString(strings.TrimSpace(cookie.Value))
	if err != nil {
		return Notice{}, false
	}
	var notice Notice
	if err := json.Unmarshal(decoded, &notice); err != nil {
		return Notice{}, false
	}
	return normalize(notice)
}

func base(r *http.Request, policy requestmeta.Policy) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Path:     "/",
		HttpOnly: true,
		Secure:   policy.IsHTTPS(r),
		SameSite: http.SameSiteLaxMode,
	}
}

func normalize(notice Notice) (Notice, bool) {
	notice.Key = strings.TrimSpace(notice.Key)
	notice.Kind = Kind(strings.ToLower(strings.TrimSpace(string(notice.Kind))))
	if notice.Key == "" {
		return Notice{}, false
	}
	switch notice.Kind {
	case KindSuccess, KindInfo, KindWarning, KindError:
		return notice, true
	default:
		return Notice{}, false
	}
}
