package sample

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"
)

// ErrUnauthenticated reports a read attempted without a bearer token.
var ErrUnauthenticated = errors.New("sample: missing bearer token")

// TransactionType is the side of a trade.
type TransactionType string

const (
	Buy  TransactionType = "BUY"
	Sell TransactionType = "SELL"
)

// ParseTransactionType accepts a case-insensitive BUY or SELL.
func ParseTransactionType(raw string) (TransactionType, bool) {
	switch TransactionType(strings.ToUpper(strings.TrimSpace(raw))) {
	case Buy:
		return Buy, true
	case Sell:
		return Sell, true
	default:
		return "", false
	}
}

// Holding is one position in the portfolio.
type Holding struct {
	Symbol       string
	Name         string
	Shares       float64
	AveragePrice float64
	CurrentPrice float64
}

// MarketValue is shares times the current price.
func (h Holding) MarketValue() float64 {
	return round2(h.Shares * h.CurrentPrice)
}

// CostBasis is shares times the average purchase price.
func (h Holding) CostBasis() float64 {
	return round2(h.Shares * h.AveragePrice)
}

// GainLoss is market value minus cost basis.
func (h Holding) GainLoss() float64 {
	return round2(h.MarketValue() - h.CostBasis())
}

// GainLossPercent is the gain relative to cost basis, zero for a free position.
func (h Holding) GainLossPercent() float64 {
	basis := h.CostBasis()
	if basis == 0 {
		return 0
	}
	return round2(h.GainLoss() / basis * 100)
}

// Transaction is one recorded trade.
type Transaction struct {
	ID     string
	Date   time.Time
	Type   TransactionType
	Symbol string
	Shares float64
	Price  float64
}

// Total is shares times price.
func (t Transaction) Total() float64 {
	return round2(t.Shares * t.Price)
}

// Allocation is the value held in one asset class.
type Allocation struct {
	Asset string
	Value float64
}

// Summary is the dashboard headline data.
type Summary struct {
	TotalValue         float64
	DailyChange        float64
	DailyChangePercent float64
	Allocation         []Allocation
}

// Share returns a's fraction of the summary total as a percentage.
func (s Summary) Share(a Allocation) float64 {
	if s.TotalValue == 0 {
		return 0
	}
	return a.Value / s.TotalValue * 100
}

// Store serves the fixed demonstration data. It is safe for concurrent use
// because nothing mutates it after construction.
type Store struct {
	summary      Summary
	holdings     []Holding
	transactions []Transaction
}

// New returns a Store loaded with the demonstration portfolio.
func New() *Store {
	return &Store{
		summary:      defaultSummary(),
		holdings:     defaultHoldings(),
		transactions: defaultTransactions(),
	}
}

// Summary returns the portfolio headline figures.
func (s *Store) Summary(ctx context.Context, accessToken string) (Summary, error) {
	if err := authorize(ctx, accessToken); err != nil {
		return Summary{}, err
	}
	out := s.summary
	out.Allocation = slices.Clone(s.summary.Allocation)
	return out, nil
}

// Holdings returns every position ordered by symbol.
func (s *Store) Holdings(ctx context.Context, accessToken string) ([]Holding, error) {
	if err := authorize(ctx, accessToken); err != nil {
		return nil, err
	}
	return slices.Clone(s.holdings), nil
}

// Transactions returns trades newest first. A positive limit caps the result.
func (s *Store) Transactions(ctx context.Context, accessToken string, limit int) ([]Transaction, error) {
	if err := authorize(ctx, accessToken); err != nil {
		return nil, err
	}
	out := slices.Clone(s.transactions)
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

// Record accepts trade for the caller and returns it with an assigned id.
// The demonstration store never changes, so the trade is not listed later.
func (s *Store) Record(ctx context.Context, accessToken string, trade Transaction) (Transaction, error) {
	if err := authorize(ctx, accessToken); err != nil {
		return Transaction{}, err
	}
	if _, ok := ParseTransactionType(string(trade.Type)); !ok {
		return Transaction{}, fmt.Errorf("sample: unknown transaction type %q", trade.Type)
	}
	if trade.Shares <= 0 || trade.Price <= 0 {
		return Transaction{}, errors.New("sample: shares and price must be positive")
	}
	trade.ID = "txn-" + strconv.Itoa(len(s.transactions)+1)
	return trade, nil
}

// ErrIncompleteBrokerCredentials reports a broker link without key or secret.
var ErrIncompleteBrokerCredentials = errors.New("sample: broker key and secret are required")

// LinkBroker accepts broker API credentials for the caller. Nothing is
// stored; the credentials are only checked for presence.
func (s *Store) LinkBroker(ctx context.Context, accessToken, apiKey, apiSecret string) error {
	if err := authorize(ctx, accessToken); err != nil {
		return err
	}
	if strings.TrimSpace(apiKey) == "" || strings.TrimSpace(apiSecret) == "" {
		return ErrIncompleteBrokerCredentials
	}
	return nil
}

func authorize(ctx context.Context, accessToken string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(accessToken) == "" {
		return ErrUnauthenticated
	}
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
