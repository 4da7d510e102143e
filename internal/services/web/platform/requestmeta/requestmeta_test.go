package requestmeta

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestPolicyScheme(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		policy Policy
		setup  func(*http.Request)
		want   string
	}{
		{name: "plain", want: "http"},
		{name: "tls", setup: func(r *http.Request) { r.TLS = &tls.ConnectionState{} }, want: "https"},
		{
			name:  "forwarded proto ignored by default",
			setup: func(r *http.Request) { r.Header.Set("X-Forwarded-Proto", "https") },
			want:  "http",
		},
		{
			name:   "forwarded proto trusted",
			policy: Policy{TrustForwardedProto: true},
			setup:  func(r *http.Request) { r.Header.Set("X-Forwarded-Proto", "HTTPS") },
			want:   "https",
		},
		{
			name:   "garbage forwarded proto falls back",
			policy: Policy{TrustForwardedProto: true},
			setup:  func(r *http.Request) { r.Header.Set("X-Forwarded-Proto", "gopher") },
			want:   "http",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
			if tc.setup != nil {
				tc.setup(req)
			}
			if got := tc.policy.Scheme(req); got != tc.want {
				t.Fatalf("Scheme() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestPolicySameOrigin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		policy  Policy
		headers map[string]string
		want    bool
	}{
		{name: "no proof", want: false},
		{name: "matching origin", headers: map[string]string{"Origin": "http://example.com"}, want: true},
		{name: "matching origin explicit port", headers: map[string]string{"Origin": "http://example.com:80"}, want: true},
		{name: "matching referer", headers: map[string]string{"Referer": "http://example.com/settings"}, want: true},
		{name: "foreign origin", headers: map[string]string{"Origin": "http://evil.test"}, want: false},
		{name: "scheme mismatch", headers: map[string]string{"Origin": "https://example.com"}, want: false},
		{name: "origin wins over referer", headers: map[string]string{
			"Origin":  "http://evil.test",
			"Referer": "http://example.com/",
		}, want: false},
		{
			name:   "trusted proxy https",
			policy: Policy{TrustForwardedProto: true},
			headers: map[string]string{
				"Origin":            "https://example.com",
				"X-Forwarded-Proto": "https",
			},
			want: true,
		},
		{name: "null origin", headers: map[string]string{"Origin": "null"}, want: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodPost, "http://example.com/logout", nil)
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			if got := tc.policy.SameOrigin(req); got != tc.want {
				t.Fatalf("SameOrigin() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestPolicyNilRequest(t *testing.T) {
	t.Parallel()

	var p Policy
	if p.Scheme(nil) != "" || p.IsHTTPS(nil) || p.SameOrigin(nil) {
		t.Fatal("nil request should resolve to nothing")
	}
}
