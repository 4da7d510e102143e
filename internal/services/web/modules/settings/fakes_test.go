package settings

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"time"

	"github.com/louisbranch/portfolio.space/internal/services/web/module"
	"github.com/louisbranch/portfolio.space/internal/services/web/platform/webctx"
	"github.com/louisbranch/portfolio.space/internal/services/web/session"
)

type fakeGateway struct {
	err     error
	calls   int
	token   string
	key     string
	secrets []string
}

func (f *fakeGateway) SaveAPICredentials(ctx context.Context, apiKey, apiSecret string) error {
	f.calls++
	f.token = webctx.AccessToken(ctx)
	f.key = apiKey
	f.secrets = append(f.secrets, apiSecret)
	return f.err
}

func signedInDeps() module.Dependencies {
	return module.Dependencies{ResolveSession: func(*http.Request) session.State {
		return session.Present(session.Session{
			ID:          "sess-1",
			Subject:     "1",
			DisplayName: "Test User",
			AccessToken: "tok123",
			ExpiresAt:   time.Now().Add(time.Hour),
		})
	}}
}

func authedGet(target string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set("Authorization", "Bearer tok123")
	return req
}

func formPost(target string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer tok123")
	return req
}

func serve(m Module, req *http.Request) (*httptest.ResponseRecorder, error) {
	mount, err := m.Mount()
	if err != nil {
		return nil, err
	}
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, req)
	return rr, nil
}

func responseCookie(rr *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
