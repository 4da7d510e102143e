package dashboard

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/louisbranch/portfolio.space/internal/services/portfolio/sample"
	"github.com/louisbranch/portfolio.space/internal/services/web/module"
	"github.com/louisbranch/portfolio.space/internal/services/web/platform/webctx"
	"github.com/louisbranch/portfolio.space/internal/services/web/session"
)

// fakeGateway implements DashboardGateway for tests with configurable return
// values and call tracking.
type fakeGateway struct {
	snapshot  DashboardSnapshot
	err       error
	calls     int
	lastToken string
	lastLimit int
}

func (f *fakeGateway) LoadDashboard(ctx context.Context, limit int) (DashboardSnapshot, error) {
	f.calls++
	f.lastToken = webctx.AccessToken(ctx)
	f.lastLimit = limit
	if f.err != nil {
		return DashboardSnapshot{}, f.err
	}
	return f.snapshot, nil
}

// fakeReader implements PortfolioReader and records the tokens it saw.
type fakeReader struct {
	tokens []string
	err    error
}

func (f *fakeReader) Summary(ctx context.Context, token string) (sample.Summary, error) {
	f.tokens = append(f.tokens, token)
	if f.err != nil {
		return sample.Summary{}, f.err
	}
	return sample.New().Summary(ctx, token)
}

func (f *fakeReader) Holdings(ctx context.Context, token string) ([]sample.Holding, error) {
	f.tokens = append(f.tokens, token)
	return []sample.Holding{
		{Symbol: "AAPL", Shares: 10, AveragePrice: 100, CurrentPrice: 110},
		{Symbol: "INTC", Shares: 10, AveragePrice: 50, CurrentPrice: 45},
	}, nil
}

func (f *fakeReader) Transactions(ctx context.Context, token string, limit int) ([]sample.Transaction, error) {
	f.tokens = append(f.tokens, token)
	return sample.New().Transactions(ctx, token, limit)
}

func testSession() session.Session {
	return session.Session{
		ID:          "sess-1",
		Subject:     "1",
		DisplayName: "Test User",
		Email:       "test@example.com",
		AccessToken: "tok123",
		ExpiresAt:   time.Now().Add(time.Hour),
	}
}

func signedInDeps() module.Dependencies {
	return module.Dependencies{ResolveSession: func(*http.Request) session.State {
		return session.Present(testSession())
	}}
}

// authedRequest builds a request as the gate forwards it for a signed-in visitor.
func authedRequest(method, target string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, target, body)
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
