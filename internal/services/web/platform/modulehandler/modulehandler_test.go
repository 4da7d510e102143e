package modulehandler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/louisbranch/portfolio.space/internal/services/web/module"
	apperrors "github.com/louisbranch/portfolio.space/internal/services/web/platform/errors"
	"github.com/louisbranch/portfolio.space/internal/services/web/platform/flash"
	"github.com/louisbranch/portfolio.space/internal/services/web/platform/webctx"
	"github.com/louisbranch/portfolio.space/internal/services/web/session"
)

func TestGatewayContextRequiresBearerToken(t *testing.T) {
	t.Parallel()

	base := NewBase(module.Dependencies{})
	req := httptest.NewRequest(http.MethodGet, "/portfolio", nil)
	if _, err := base.GatewayContext(req); apperrors.KindOf(err) != apperrors.KindUnauthorized {
		t.Fatalf("GatewayContext() error kind = %q, want %q", apperrors.KindOf(err), apperrors.KindUnauthorized)
	}

	req.Header.Set("Authorization", "Bearer tok123")
	ctx, err := base.GatewayContext(req)
	if err != nil {
		t.Fatalf("GatewayContext() error = %v", err)
	}
	if got := webctx.AccessToken(ctx); got != "tok123" {
		t.Fatalf("AccessToken() = %q, want %q", got, "tok123")
	}
}

func TestPageContextUsesSessionResolver(t *testing.T) {
	t.Parallel()

	base := NewBase(module.Dependencies{ResolveSession: func(*http.Request) session.State {
		return session.Present(session.Session{ID: "s1"})
	}})
	rr := httptest.NewRecorder()
	pc := base.PageContext(rr, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	if _, ok := pc.State.Session(); !ok {
		t.Fatalf("PageContext().State = %s, want present", pc.State)
	}
}

func TestRedirectWithNotice(t *testing.T) {
	t.Parallel()

	base := NewBase(module.Dependencies{})
	rr := httptest.NewRecorder()
	base.RedirectWithNotice(rr, httptest.NewRequest(http.MethodPost, "/transactions", nil), "/transactions", flash.Success("transactions.notice.added"))

	if rr.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusFound)
	}
	if got := rr.Header().Get("Location"); got != "/transactions" {
		t.Fatalf("Location = %q, want %q", got, "/transactions")
	}
	found := false
	for _, c := range rr.Result().Cookies() {
		if c.Name == flash.CookieName {
			found = true
		}
	}
	if !found {
		t.Fatal("flash cookie not written")
	}
}

func TestWriteErrorMapsKinds(t *testing.T) {
	t.Parallel()

	base := NewBase(module.Dependencies{})
	rr := httptest.NewRecorder()
	base.WriteError(rr, httptest.NewRequest(http.MethodGet, "/portfolio", nil), apperrors.Wrap(apperrors.KindUnauthorized, "", errors.New("no token")))
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusUnauthorized)
	}
}
