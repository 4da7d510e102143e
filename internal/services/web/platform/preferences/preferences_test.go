package preferences

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/louisbranch/portfolio.space/internal/services/web/i18n"
	"github.com/louisbranch/portfolio.space/internal/services/web/platform/requestmeta"
)

func TestReadDefaultsWithoutCookie(t *testing.T) {
	t.Parallel()

	got := Read(httptest.NewRequest(http.MethodGet, "/", nil))
	if got != Default() {
		t.Fatalf("Read() = %+v, want %+v", got, Default())
	}
	if got := Read(nil); got != Default() {
		t.Fatalf("Read(nil) = %+v, want defaults", got)
	}
}

func TestWriteThenRead(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/settings", nil)
	rec := httptest.NewRecorder()
	want := Preferences{DarkMode: true, EmailNotifications: false, Currency: i18n.CZK}
	Write(rec, req, want, requestmeta.Policy{})

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != CookieName {
		t.Fatalf("cookies = %+v, want one %s cookie", cookies, CookieName)
	}
	if !cookies[0].HttpOnly {
		t.Fatal("preferences cookie must be HttpOnly")
	}

	next := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	next.AddCookie(cookies[0])
	if got := Read(next); got != want {
		t.Fatalf("Read() = %+v, want %+v", got, want)
	}
}

func TestReadRejectsGarbage(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "not-base64!"})
	if got := Read(req); got != Default() {
		t.Fatalf("Read(garbage) = %+v, want defaults", got)
	}
}

func TestWriteNormalizesUnknownCurrency(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/settings", nil)
	rec := httptest.NewRecorder()
	Write(rec, req, Preferences{Currency: "BTC"}, requestmeta.Policy{})

	next := httptest.NewRequest(http.MethodGet, "/", nil)
	next.AddCookie(rec.Result().Cookies()[0])
	if got := Read(next).Currency; got != i18n.USD {
		t.Fatalf("Currency = %q, want %q", got, i18n.USD)
	}
}
