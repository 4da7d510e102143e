package portfolio

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/louisbranch/portfolio.space/internal/services/web/module"
	"github.com/louisbranch/portfolio.space/internal/services/web/platform/webctx"
	"github.com/louisbranch/portfolio.space/internal/services/web/session"
)

type fakeGateway struct {
	holdings  []Holding
	err       error
	lastToken string
}

func (f *fakeGateway) ListHoldings(ctx context.Context) ([]Holding, error) {
	f.lastToken = webctx.AccessToken(ctx)
	if f.err != nil {
		return nil, f.err
	}
	return f.holdings, nil
}

// numberedHoldings returns n holdings with symbols S00, S01, ...
func numberedHoldings(n int) []Holding {
	out := make([]Holding, 0, n)
	for i := n - 1; i >= 0; i-- {
		out = append(out, Holding{Symbol: fmt.Sprintf("S%02d", i), Name: "Holding", Shares: 1})
	}
	return out
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

func authedRequest(target string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
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
