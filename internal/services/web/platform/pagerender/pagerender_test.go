package pagerender

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/louisbranch/portfolio.space/internal/services/web/module"
	"github.com/louisbranch/portfolio.space/internal/services/web/platform/flash"
	"github.com/louisbranch/portfolio.space/internal/services/web/platform/preferences"
	"github.com/louisbranch/portfolio.space/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/portfolio.space/internal/services/web/session"
)

func textComponent(value string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, value)
		return err
	})
}

func presentDeps() module.Dependencies {
	return module.Dependencies{ResolveSession: func(*http.Request) session.State {
		return session.Present(session.Session{ID: "s1", DisplayName: "Test User", Email: "test@example.com", AccessToken: "tok"})
	}}
}

func TestWriteAppPageRendersShellForPresentSession(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rr := httptest.NewRecorder()
	deps := presentDeps()
	pc := Resolve(rr, req, deps)

	err := WriteAppPage(rr, req, deps, pc, AppPage{
		Title:      "Dashboard",
		StatusCode: http.StatusAccepted,
		Fragment:   textComponent(`<section id="fragment-root">ok</section>`),
	})
	if err != nil {
		t.Fatalf("WriteAppPage() error = %v", err)
	}
	if rr.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusAccepted)
	}
	body := rr.Body.String()
	for _, want := range []string{`id="fragment-root"`, `action="/logout"`, "<!doctype html>", `aria-current="page"`} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q: %s", want, body)
		}
	}
	if got := rr.Header().Get("Cache-Control"); got != "no-store" {
		t.Fatalf("Cache-Control = %q, want %q", got, "no-store")
	}
}

func TestWriteAppPageWithoutSessionWritesNothing(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rr := httptest.NewRecorder()
	deps := module.Dependencies{}
	pc := Resolve(rr, req, deps)

	if err := WriteAppPage(rr, req, deps, pc, AppPage{Fragment: textComponent("secret holdings")}); err != nil {
		t.Fatalf("WriteAppPage() error = %v", err)
	}
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusUnauthorized)
	}
	if rr.Body.Len() != 0 {
		t.Fatalf("body = %q, want empty", rr.Body.String())
	}
}

func TestWriteAppPageRendersHTMXFragment(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/portfolio", nil)
	req.Header.Set("HX-Request", "true")
	rr := httptest.NewRecorder()
	deps := presentDeps()

	if err := WriteAppPage(rr, req, deps, Resolve(rr, req, deps), AppPage{Fragment: textComponent(`<table id="grid"></table>`)}); err != nil {
		t.Fatalf("WriteAppPage() error = %v", err)
	}
	body := rr.Body.String()
	if body != `<table id="grid"></table>` {
		t.Fatalf("body = %q, want bare fragment", body)
	}
}

func TestWriteAppPageConsumesFlashToast(t *testing.T) {
	t.Parallel()

	seed := httptest.NewRecorder()
	flash.Write(seed, httptest.NewRequest(http.MethodPost, "/settings", nil), flash.Success("settings.notice.saved"), requestmeta.Policy{})

	req := httptest.NewRequest(http.MethodGet, "/settings", nil)
	for _, c := range seed.Result().Cookies() {
		req.AddCookie(c)
	}
	rr := httptest.NewRecorder()
	deps := presentDeps()
	if err := WriteAppPage(rr, req, deps, Resolve(rr, req, deps), AppPage{Title: "Settings"}); err != nil {
		t.Fatalf("WriteAppPage() error = %v", err)
	}
	if !strings.Contains(rr.Body.String(), "Preferences saved.") {
		t.Fatalf("body missing toast: %s", rr.Body.String())
	}
	cleared := false
	for _, c := range rr.Result().Cookies() {
		if c.Name == flash.CookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatal("flash cookie was not cleared")
	}
}

func TestWritePublicPageUsesThemePreference(t *testing.T) {
	t.Parallel()

	seed := httptest.NewRecorder()
	preferences.Write(seed, httptest.NewRequest(http.MethodPost, "/settings", nil), preferences.Preferences{DarkMode: true}, requestmeta.Policy{})
	req := httptest.NewRequest(http.MethodGet, "/?lang=cs", nil)
	req.AddCookie(seed.Result().Cookies()[0])
	rr := httptest.NewRecorder()

	if err := WritePublicPage(rr, req, Resolve(rr, req, module.Dependencies{}), PublicPage{
		Title:      "Sign in",
		StatusCode: http.StatusUnauthorized,
		Body:       textComponent(`<form id="login"></form>`),
	}); err != nil {
		t.Fatalf("WritePublicPage() error = %v", err)
	}
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusUnauthorized)
	}
	body := rr.Body.String()
	for _, want := range []string{`<html lang="cs" data-theme="dark">`, `<form id="login"></form>`, `class="public-header"`, "Přihlásit se"} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q: %s", want, body)
		}
	}
}
