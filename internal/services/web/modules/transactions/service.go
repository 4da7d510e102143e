package transactions

import (
	"context"
	"math"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/louisbranch/portfolio.space/internal/services/web/platform/errors"
)

const maxSymbolLength = 10

// Transaction is one row of the transaction grid.
type Transaction struct {
	ID     string
	Date   time.Time
	Type   string
	Symbol string
	Shares float64
	Price  float64
	Total  float64
}

// TransactionInput is a validated trade entered by the user.
type TransactionInput struct {
	Type   string
	Symbol string
	Shares float64
	Price  float64
	Date   time.Time
}

// TransactionsGateway reads and records trades for the bearer token carried
// by ctx.
type TransactionsGateway interface {
	ListTransactions(ctx context.Context) ([]Transaction, error)
	RecordTransaction(ctx context.Context, input TransactionInput) error
}

// transactionForm holds raw form values and per-field error keys.
type transactionForm struct {
	Type   string
	Symbol string
	Shares string
	Price  string
	Date   string
	Errors map[string]string
}

func (f transactionForm) hasErrors() bool {
	return len(f.Errors) > 0
}

type service struct {
	gateway TransactionsGateway
	now     func() time.Time
}

func newService(gateway TransactionsGateway, now func() time.Time) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	if now == nil {
		now = time.Now
	}
	return service{gateway: gateway, now: now}
}

// blankForm returns an entry form defaulted to a purchase dated today.
func (s service) blankForm() transactionForm {
	return transactionForm{Type: "BUY", Date: s.now().Format(time.DateOnly)}
}

func (s service) listTransactions(ctx context.Context) ([]Transaction, error) {
	rows, err := s.gateway.ListTransactions(ctx)
	if err != nil {
		return nil, mapGatewayError(err)
	}
	return rows, nil
}

func (s service) recordTransaction(ctx context.Context, input TransactionInput) error {
	if err := s.gateway.RecordTransaction(ctx, input); err != nil {
		return mapGatewayError(err)
	}
	return nil
}

// parseTransactionForm validates raw values. Error keys are collected per
// field so every problem is reported at once.
func parseTransactionForm(form transactionForm) (TransactionInput, transactionForm) {
	form.Type = strings.ToUpper(strings.TrimSpace(form.Type))
	form.Symbol = strings.ToUpper(strings.TrimSpace(form.Symbol))
	form.Shares = strings.TrimSpace(form.Shares)
	form.Price = strings.TrimSpace(form.Price)
	form.Date = strings.TrimSpace(form.Date)
	form.Errors = map[string]string{}

	var input TransactionInput
	switch form.Type {
	case "BUY", "SELL":
		input.Type = form.Type
	default:
		form.Errors["type"] = "transactions.error.type"
	}
	if validSymbol(form.Symbol) {
		input.Symbol = form.Symbol
	} else {
		form.Errors["symbol"] = "transactions.error.symbol"
	}
	if v, ok := positiveNumber(form.Shares); ok {
		input.Shares = v
	} else {
		form.Errors["shares"] = "transactions.error.shares"
	}
	if v, ok := positiveNumber(form.Price); ok {
		input.Price = v
	} else {
		form.Errors["price"] = "transactions.error.price"
	}
	if date, err := time.Parse(time.DateOnly, form.Date); err == nil {
		input.Date = date
	} else {
		form.Errors["date"] = "transactions.error.date"
	}
	return input, form
}

func validSymbol(symbol string) bool {
	if symbol == "" || len(symbol) > maxSymbolLength {
		return false
	}
	for _, r := range symbol {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

func positiveNumber(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, false
	}
	return v, true
}

func mapGatewayError(err error) error {
	if apperrors.KindOf(err) == apperrors.KindUnknown {
		return apperrors.Wrap(apperrors.KindUnavailable, "error.unavailable", err)
	}
	return err
}
