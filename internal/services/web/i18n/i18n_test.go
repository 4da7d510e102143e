package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/text/language"
)

func TestResolveTagPrecedence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		target      string
		cookie      string
		accept      string
		want        language.Tag
		wantPersist bool
	}{
		{name: "default", target: "/", want: language.AmericanEnglish},
		{name: "query wins", target: "/?lang=cs", cookie: "en-US", accept: "en", want: language.Czech, wantPersist: true},
		{name: "cookie over accept", target: "/", cookie: "en-US", accept: "cs", want: language.AmericanEnglish},
		{name: "accept language", target: "/", accept: "cs-CZ, en;q=0.8", want: language.Czech},
		{name: "bad query falls through", target: "/?lang=%%%", accept: "cs", want: language.Czech},
		{name: "unsupported falls back", target: "/", accept: "ja", want: language.AmericanEnglish},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: LangCookieName, Value: tc.cookie})
			}
			if tc.accept != "" {
				req.Header.Set("Accept-Language", tc.accept)
			}
			tag, persist := ResolveTag(req)
			if tag != tc.want {
				t.Fatalf("tag = %s, want %s", tag, tc.want)
			}
			if persist != tc.wantPersist {
				t.Fatalf("persist = %v, want %v", persist, tc.wantPersist)
			}
		})
	}
}

func TestResolvePersistsExplicitChoice(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	_, tag := Resolve(rec, httptest.NewRequest(http.MethodGet, "/?lang=cs", nil))
	if tag != language.Czech {
		t.Fatalf("tag = %s, want cs", tag)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != LangCookieName || cookies[0].Value != "cs" {
		t.Fatalf("cookies = %+v, want %s=cs", cookies, LangCookieName)
	}
}

func TestMoney(t *testing.T) {
	t.Parallel()

	en := Printer(language.AmericanEnglish)
	tests := []struct {
		name string
		got  string
		want string
	}{
		{name: "usd", got: Money(en, 125000, USD), want: "$125,000.00"},
		{name: "negative", got: Money(en, -42.5, EUR), want: "-€42.50"},
		{name: "yen has no minor unit", got: Money(en, 17050, JPY), want: "¥17,050"},
		{name: "koruna suffix", got: Money(en, 1705, CZK), want: "1,705.00 Kč"},
		{name: "signed gain", got: SignedMoney(en, 1250, USD), want: "+$1,250.00"},
		{name: "signed loss", got: SignedMoney(en, -30, GBP), want: "-£30.00"},
		{name: "unknown currency", got: Money(en, 1, Currency("XXX")), want: "$1.00"},
	}
	for _, tc := range tests {
		if tc.got != tc.want {
			t.Fatalf("%s: got %q, want %q", tc.name, tc.got, tc.want)
		}
	}
}

func TestPercentAndQuantity(t *testing.T) {
	t.Parallel()

	en := Printer(language.AmericanEnglish)
	if got := Percent(en, 1.01); got != "1.01%" {
		t.Fatalf("Percent() = %q, want %q", got, "1.01%")
	}
	if got := SignedPercent(en, 13.666); got != "+13.67%" {
		t.Fatalf("SignedPercent() = %q, want %q", got, "+13.67%")
	}
	if got := SignedPercent(en, -2.5); got != "-2.50%" {
		t.Fatalf("SignedPercent() = %q, want %q", got, "-2.50%")
	}
	if got := Quantity(en, 100); got != "100" {
		t.Fatalf("Quantity() = %q, want %q", got, "100")
	}
}

func TestParseCurrency(t *testing.T) {
	t.Parallel()

	if c, ok := ParseCurrency(" czk "); !ok || c != CZK {
		t.Fatalf("ParseCurrency(czk) = %q, %v", c, ok)
	}
	if _, ok := ParseCurrency("BTC"); ok {
		t.Fatal("ParseCurrency(BTC) accepted")
	}
}

func TestCatalogHasCzechCopy(t *testing.T) {
	t.Parallel()

	if got := Printer(language.Czech).Sprintf("nav.dashboard"); got != "Přehled" {
		t.Fatalf("cs nav.dashboard = %q, want %q", got, "Přehled")
	}
	if got := Printer(language.AmericanEnglish).Sprintf("nav.dashboard"); got != "Dashboard" {
		t.Fatalf("en nav.dashboard = %q, want %q", got, "Dashboard")
	}
}

func TestCatalogsDefineTheSameKeys(t *testing.T) {
	t.Parallel()

	en := Printer(language.AmericanEnglish)
	cs := Printer(language.Czech)
	for _, key := range []string{"nav.portfolio", "nav.logout", "login.error.invalid", "settings.error.currency", "error.not_found.title"} {
		if got := en.Sprintf(key); got == key {
			t.Fatalf("en %s is untranslated", key)
		}
		if got := cs.Sprintf(key); got == key {
			t.Fatalf("cs %s is untranslated", key)
		}
	}
}
