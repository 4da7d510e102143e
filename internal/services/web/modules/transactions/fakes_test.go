package transactions

import (
	"context"
	"io"
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
	rows      []Transaction
	listErr   error
	recordErr error
	recorded  []TransactionInput
	tokens    []string
}

func (f *fakeGateway) ListTransactions(ctx context.Context) ([]Transaction, error) {
	f.tokens = append(f.tokens, webctx.AccessToken(ctx))
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.rows, nil
}

func (f *fakeGateway) RecordTransaction(ctx context.Context, input TransactionInput) error {
	f.tokens = append(f.tokens, webctx.AccessToken(ctx))
	if f.recordErr != nil {
		return f.recordErr
	}
	f.recorded = append(f.recorded, input)
	return nil
}

func fixedClock() time.Time {
	return time.Date(2023, 10, 2, 9, 30, 0, 0, time.UTC)
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

func authedRequest(method, target string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Authorization", "Bearer tok123")
	return req
}

func formPost(values url.Values) *http.Request {
	req := authedRequest(http.MethodPost, "/transactions", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
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
