package transactions

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/louisbranch/portfolio.space/internal/services/portfolio/sample"
	apperrors "github.com/louisbranch/portfolio.space/internal/services/web/platform/errors"
	"github.com/louisbranch/portfolio.space/internal/services/web/platform/flash"
	"github.com/louisbranch/portfolio.space/internal/services/web/platform/webctx"
	"github.com/louisbranch/portfolio.space/internal/services/web/routepath"
)

func validValues() url.Values {
	return url.Values{
		"type":   {"SELL"},
		"symbol": {"msft"},
		"shares": {"2.5"},
		"price":  {"327.89"},
		"date":   {"2023-10-02"},
	}
}

func TestModuleIdentity(t *testing.T) {
	t.Parallel()

	m := New()
	if got := m.ID(); got != "transactions" {
		t.Fatalf("ID() = %q, want %q", got, "transactions")
	}
	if m.Healthy() {
		t.Fatal("module without gateway reported healthy")
	}
	mount, err := m.Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != routepath.TransactionsPrefix {
		t.Fatalf("Prefix = %q, want %q", mount.Prefix, routepath.TransactionsPrefix)
	}
}

func TestMountRendersGridAndClosedForm(t *testing.T) {
	t.Parallel()

	m := New(WithGateway(NewSampleGateway(sample.New())), WithDependencies(signedInDeps()), WithClock(fixedClock))
	rr, err := serve(m, authedRequest(http.MethodGet, routepath.Transactions, nil))
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	for _, want := range []string{
		`id="transaction-grid"`,
		"<td>2023-10-01</td>",
		`<td class="type-buy">BUY</td>`,
		`<td class="symbol">AAPL</td>`,
		`<td class="num">$170.50</td>`,
		`<td class="num">$1,705.00</td>`,
		`<details class="entry" id="add-transaction">`,
		`<option value="BUY" selected>`,
		`name="date" required value="2023-10-02"`,
		`action="/transactions"`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q", want)
		}
	}
}

func TestMountCreateRedirectsWithNotice(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{}
	m := New(WithGateway(gateway), WithDependencies(signedInDeps()))
	rr, err := serve(m, formPost(validValues()))
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if rr.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusFound)
	}
	if got := rr.Header().Get("Location"); got != routepath.Transactions {
		t.Fatalf("Location = %q, want %q", got, routepath.Transactions)
	}
	var notice *http.Cookie
	for _, c := range rr.Result().Cookies() {
		if c.Name == flash.CookieName {
			notice = c
		}
	}
	if notice == nil || notice.Value == "" {
		t.Fatal("expected flash notice cookie")
	}
	if len(gateway.recorded) != 1 {
		t.Fatalf("recorded = %d, want 1", len(gateway.recorded))
	}
	got := gateway.recorded[0]
	if got.Type != "SELL" || got.Symbol != "MSFT" || got.Shares != 2.5 || got.Price != 327.89 {
		t.Fatalf("recorded input = %+v", got)
	}
	if gateway.tokens[0] != "tok123" {
		t.Fatalf("gateway token = %q, want %q", gateway.tokens[0], "tok123")
	}
}

func TestMountCreateInvalidFormRerendersWithErrors(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{}
	values := validValues()
	values.Set("symbol", "<script>")
	values.Set("shares", "-3")
	m := New(WithGateway(gateway), WithDependencies(signedInDeps()))
	rr, err := serve(m, formPost(values))
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
	body := rr.Body.String()
	for _, want := range []string{
		`<details class="entry" id="add-transaction" open>`,
		`id="error-symbol"`,
		"Enter a ticker symbol of 1 to 10 letters.",
		`id="error-shares"`,
		"Shares must be a positive number.",
		`value="&lt;SCRIPT&gt;"`,
		`<option value="SELL" selected>`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q", want)
		}
	}
	if strings.Contains(body, `id="error-price"`) {
		t.Fatal("valid price reported as an error")
	}
	if len(gateway.recorded) != 0 {
		t.Fatal("invalid form reached the gateway")
	}
}

func TestMountCreateGatewayFailure(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{recordErr: apperrors.E(apperrors.KindUnavailable, "down")}
	m := New(WithGateway(gateway), WithDependencies(signedInDeps()))
	rr, err := serve(m, formPost(validValues()))
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusServiceUnavailable)
	}
}

func TestMountCreateWithoutBearerTokenIsUnauthorized(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{}
	req := formPost(validValues())
	req.Header.Del("Authorization")
	rr, err := serve(New(WithGateway(gateway), WithDependencies(signedInDeps())), req)
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusUnauthorized)
	}
	if len(gateway.recorded) != 0 {
		t.Fatal("anonymous request reached the gateway")
	}
}

func TestSampleGatewayRecordsThroughStore(t *testing.T) {
	t.Parallel()

	gateway := NewSampleGateway(sample.New())
	input := TransactionInput{Type: "BUY", Symbol: "AAPL", Shares: 1, Price: 1}
	if err := gateway.RecordTransaction(context.Background(), input); apperrors.HTTPStatus(err) != http.StatusUnauthorized {
		t.Fatalf("RecordTransaction() without token status = %d, want %d", apperrors.HTTPStatus(err), http.StatusUnauthorized)
	}
	ctx := webctx.WithAccessToken(context.Background(), "tok123")
	if err := gateway.RecordTransaction(ctx, input); err != nil {
		t.Fatalf("RecordTransaction() error = %v", err)
	}
	input.Type = "HOLD"
	if err := gateway.RecordTransaction(ctx, input); apperrors.HTTPStatus(err) != http.StatusBadRequest {
		t.Fatalf("RecordTransaction(HOLD) status = %d, want %d", apperrors.HTTPStatus(err), http.StatusBadRequest)
	}
	rows, err := gateway.ListTransactions(ctx)
	if err != nil {
		t.Fatalf("ListTransactions() error = %v", err)
	}
	if len(rows) == 0 || rows[0].Total != 1705 {
		t.Fatalf("rows = %+v", rows)
	}
}
