package i18n

import (
	"math"
	"strings"

	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Currency is an ISO 4217 display currency.
type Currency string

const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
	JPY Currency = "JPY"
	CZK Currency = "CZK"
)

// Currencies lists the selectable display currencies in menu order.
func Currencies() []Currency {
	return []Currency{USD, EUR, GBP, JPY, CZK}
}

// ParseCurrency accepts a case-insensitive currency code.
func ParseCurrency(raw string) (Currency, bool) {
	code := Currency(strings.ToUpper(strings.TrimSpace(raw)))
	for _, c := range Currencies() {
		if c == code {
			return c, true
		}
	}
	return "", false
}

type currencyStyle struct {
	symbol string
	suffix bool
	scale  int
}

var currencyStyles = map[Currency]currencyStyle{
	USD: {symbol: "$", scale: 2},
	EUR: {symbol: "€", scale: 2},
	GBP: {symbol: "£", scale: 2},
	JPY: {symbol: "¥", scale: 0},
	CZK: {symbol: "Kč", suffix: true, scale: 2},
}

// Money formats amount in cur with locale grouping, e.g. "$125,000.00".
func Money(p *message.Printer, amount float64, cur Currency) string {
	return money(p, amount, cur, false)
}

// SignedMoney is Money with an explicit sign, e.g. "+$1,250.00".
func SignedMoney(p *message.Printer, amount float64, cur Currency) string {
	return money(p, amount, cur, true)
}

// Percent formats value as a percentage with two decimals, e.g. "1.01%".
func Percent(p *message.Printer, value float64) string {
	return p.Sprint(number.Decimal(value, number.Scale(2))) + "%"
}

// SignedPercent is Percent with an explicit sign, e.g. "+13.67%".
func SignedPercent(p *message.Printer, value float64) string {
	return sign(value) + Percent(p, math.Abs(value))
}

// Quantity formats a share count without trailing zeros.
func Quantity(p *message.Printer, value float64) string {
	return p.Sprint(number.Decimal(value, number.MaxFractionDigits(4)))
}

func money(p *message.Printer, amount float64, cur Currency, signed bool) string {
	style, ok := currencyStyles[cur]
	if !ok {
		style = currencyStyles[USD]
	}
	digits := p.Sprint(number.Decimal(math.Abs(amount), number.Scale(style.scale)))
	prefix := ""
	switch {
	case signed:
		prefix = sign(amount)
	case amount < 0:
		prefix = "-"
	}
	if style.suffix {
		return prefix + digits + " " + style.symbol
	}
	return prefix + style.symbol + digits
}

func sign(value float64) string {
	if value < 0 {
		return "-"
	}
	return "+"
}
