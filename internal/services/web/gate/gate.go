// Package gate decides, per navigation request, whether to let it through,
// send an anonymous visitor to the login page, or send a signed-in visitor
// away from the authentication section.
//
// The decision is a pure function of the request path, query, and resolved
// session; Middleware adapts it to net/http.
package gate

import (
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/louisbranch/portfolio.space/internal/services/web/session"
)

// Outcome is the kind of decision.
type Outcome uint8

const (
	// Bypass means the path is outside every guarded section.
	Bypass Outcome = iota
	// PassThrough lets the request continue, possibly with extra headers.
	PassThrough
	// Redirect sends the visitor to Decision.Location.
	Redirect
)

func (o Outcome) String() string {
	switch o {
	case PassThrough:
		return "pass_through"
	case Redirect:
		return "redirect"
	default:
		return "bypass"
	}
}

// Section classifies a path against the route table.
type Section uint8

const (
	SectionNone Section = iota
	SectionAuth
	SectionProtected
)

func (s Section) String() string {
	switch s {
	case SectionAuth:
		return "auth"
	case SectionProtected:
		return "protected"
	default:
		return "none"
	}
}

// Request is one navigation to decide. Path is the escaped request path, as
// returned by url.URL.EscapedPath. Session is nil when none resolved.
type Request struct {
	Path     string
	RawQuery string
	Session  *session.Session
}

// Decision is the gate's verdict. Header holds headers to set on the
// forwarded request for PassThrough.
type Decision struct {
	Outcome  Outcome
	Section  Section
	Location string
	Header   http.Header
}

// Policy is a validated route table. It is immutable and safe for
// concurrent use.
type Policy struct {
	cfg           Config
	authSegs      []string
	protectedSegs [][]string
}

// NewPolicy validates cfg and copies it into a Policy.
func NewPolicy(cfg Config) (*Policy, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.ProtectedPrefixes = append([]string(nil), cfg.ProtectedPrefixes...)
	p := &Policy{cfg: cfg, authSegs: pathSegments(cfg.AuthPrefix)}
	for _, prefix := range cfg.ProtectedPrefixes {
		p.protectedSegs = append(p.protectedSegs, pathSegments(prefix))
	}
	return p, nil
}

// Config returns a copy of the route table.
func (p *Policy) Config() Config {
	cfg := p.cfg
	cfg.ProtectedPrefixes = append([]string(nil), p.cfg.ProtectedPrefixes...)
	return cfg
}

// Classify reports which guarded section, if any, contains the escaped path
// urlPath. Segments are unescaped one at a time after cleaning, the same way
// http.ServeMux matches patterns, so "/dashboard/%2e%2e" stays under
// "/dashboard". Matching is by whole segment: "/portfolio" covers
// "/portfolio/x" but not "/portfolios".
func (p *Policy) Classify(urlPath string) Section {
	segs := pathSegments(urlPath)
	if hasSegments(segs, p.authSegs) {
		return SectionAuth
	}
	for _, prefix := range p.protectedSegs {
		if hasSegments(segs, prefix) {
			return SectionProtected
		}
	}
	return SectionNone
}

// Decide evaluates req. The first matching rule wins:
//
//   - auth section with a session: redirect to the landing path;
//   - auth section without one: pass through unmodified;
//   - protected section without a session: redirect to the login path with
//     the original path and query in the from parameter;
//   - protected section with a session: pass through with the session's
//     bearer token in the Authorization header.
func (p *Policy) Decide(req Request) Decision {
	section := p.Classify(req.Path)
	switch section {
	case SectionAuth:
		if req.Session != nil {
			return Decision{Outcome: Redirect, Section: section, Location: p.cfg.LandingPath}
		}
		return Decision{Outcome: PassThrough, Section: section}
	case SectionProtected:
		if req.Session == nil {
			return Decision{Outcome: Redirect, Section: section, Location: p.LoginLocation(req.Path, req.RawQuery)}
		}
		decision := Decision{Outcome: PassThrough, Section: section}
		if tok := strings.TrimSpace(req.Session.AccessToken); tok != "" {
			decision.Header = http.Header{"Authorization": []string{"Bearer " + tok}}
		}
		return decision
	default:
		return Decision{Outcome: Bypass, Section: section}
	}
}

// LoginLocation builds the login URL that returns to urlPath?rawQuery.
// urlPath is the escaped path, so encoded slashes survive the round trip.
func (p *Policy) LoginLocation(urlPath, rawQuery string) string {
	from := urlPath
	if rawQuery != "" {
		from += "?" + rawQuery
	}
	return fmt.Sprintf("%s?%s=%s", p.cfg.LoginPath, p.cfg.FromParam, EncodeURIComponent(from))
}

// SafeReturnPath reports whether from may be used as a post-login
// destination: a local absolute path outside the auth section.
// Control bytes are refused outright: browsers drop tab and newline while
// parsing, which would turn "/\t/host" into the protocol-relative "//host".
func (p *Policy) SafeReturnPath(from string) bool {
	for i := 0; i < len(from); i++ {
		if c := from[i]; c < 0x20 || c == 0x7f {
			return false
		}
	}
	if !strings.HasPrefix(from, "/") || strings.HasPrefix(from, "//") || strings.HasPrefix(from, "/\\") {
		return false
	}
	target, _, _ := strings.Cut(from, "?")
	target, _, _ = strings.Cut(target, "#")
	return p.Classify(target) != SectionAuth
}

// LandingPath is where signed-in visitors land by default.
func (p *Policy) LandingPath() string { return p.cfg.LandingPath }

// LoginPath is the login page path.
func (p *Policy) LoginPath() string { return p.cfg.LoginPath }

// FromParam is the login query key carrying the return destination.
func (p *Policy) FromParam() string { return p.cfg.FromParam }

func cleanPath(p string) string {
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(p)
}

// pathSegments splits the cleaned escaped path into unescaped segments.
// Segments that fail to unescape are kept verbatim.
func pathSegments(escaped string) []string {
	clean := strings.TrimPrefix(cleanPath(escaped), "/")
	if clean == "" {
		return nil
	}
	segs := strings.Split(clean, "/")
	for i, seg := range segs {
		if unescaped, err := url.PathUnescape(seg); err == nil {
			segs[i] = unescaped
		}
	}
	return segs
}

func hasSegments(segs, prefix []string) bool {
	if len(prefix) == 0 || len(segs) < len(prefix) {
		return false
	}
	for i := range prefix {
		if segs[i] != prefix[i] {
			return false
		}
	}
	return true
}

const upperhex = "0123456789ABCDEF"

// EncodeURIComponent percent-encodes s the way ECMAScript's
// encodeURIComponent does: everything except A-Z a-z 0-9 and -_.!~*'() is
// escaped, and spaces become %20.
func EncodeURIComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 3)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if uriUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

func uriUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
