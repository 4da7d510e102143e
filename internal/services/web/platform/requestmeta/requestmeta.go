// Package requestmeta derives scheme and origin facts from incoming requests.
package requestmeta

import (
	"net/http"
	"net/url"
	"strings"
)

// Policy controls which request headers are trusted when deriving the scheme.
//
// X-Forwarded-Proto is ignored unless TrustForwardedProto is set, since
// clients can send it directly when no proxy strips it.
type Policy struct {
	TrustForwardedProto bool
}

// Scheme returns "https" or "http" for r.
func (p Policy) Scheme(r *http.Request) string {
	if r == nil {
		return ""
	}
	if p.TrustForwardedProto {
		switch forwarded := strings.ToLower(strings.TrimSpace(r.Header.Get("X-Forwarded-Proto"))); forwarded {
		case "http", "https":
			return forwarded
		}
	}
	if r.URL != nil {
		switch scheme := strings.ToLower(r.URL.Scheme); scheme {
		case "http", "https":
			return scheme
		}
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}

// IsHTTPS reports whether r should be treated as served over TLS.
func (p Policy) IsHTTPS(r *http.Request) bool {
	return p.Scheme(r) == "https"
}

// SameOrigin reports whether the Origin header, or the Referer when Origin
// is absent, names the same scheme, host, and port as r.
func (p Policy) SameOrigin(r *http.Request) bool {
	if r == nil {
		return false
	}
	self := p.origin(r)
	if self.host == "" {
		return false
	}
	claimed := strings.TrimSpace(r.Header.Get("Origin"))
	if claimed == "" {
		claimed = strings.TrimSpace(r.Header.Get("Referer"))
	}
	if claimed == "" {
		return false
	}
	other, ok := parseOrigin(claimed)
	if !ok {
		return false
	}
	return other == self
}

type origin struct {
	scheme string
	host   string
	port   string
}

func (p Policy) origin(r *http.Request) origin {
	scheme := p.Scheme(r)
	host, port := splitHost(r.Host)
	if host == "" && r.URL != nil {
		host, port = splitHost(r.URL.Host)
	}
	if port == "" {
		port = defaultPort(scheme)
	}
	return origin{scheme: scheme, host: host, port: port}
}

func parseOrigin(raw string) (origin, bool) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return origin{}, false
	}
	o := origin{
		scheme: strings.ToLower(parsed.Scheme),
		host:   strings.ToLower(parsed.Hostname()),
		port:   parsed.Port(),
	}
	if o.port == "" {
		o.port = defaultPort(o.scheme)
	}
	if o.scheme == "" || o.host == "" || o.port == "" {
		return origin{}, false
	}
	return o, true
}

func splitHost(raw string) (string, string) {
	parsed, err := url.Parse("//" + strings.TrimSpace(raw))
	if err != nil {
		return "", ""
	}
	return strings.ToLower(parsed.Hostname()), parsed.Port()
}

func defaultPort(scheme string) string {
	switch scheme {
	case "https":
		return "443"
	case "http":
		return "80"
	default:
		return ""
	}
}
