package transactions

import (
	"context"
	"errors"

	"github.com/louisbranch/portfolio.space/internal/services/portfolio/sample"
	apperrors "github.com/louisbranch/portfolio.space/internal/services/web/platform/errors"
	"github.com/louisbranch/portfolio.space/internal/services/web/platform/webctx"
)

// TradeStore exposes the trade reads and writes.
type TradeStore interface {
	Transactions(ctx context.Context, accessToken string, limit int) ([]sample.Transaction, error)
	Record(ctx context.Context, accessToken string, trade sample.Transaction) (sample.Transaction, error)
}

// NewSampleGateway builds the transactions gateway over the sample portfolio.
func NewSampleGateway(store TradeStore) TransactionsGateway {
	if store == nil {
		return unavailableGateway{}
	}
	return sampleGateway{store: store}
}

type sampleGateway struct {
	store TradeStore
}

func (g sampleGateway) ListTransactions(ctx context.Context) ([]Transaction, error) {
	trades, err := g.store.Transactions(ctx, webctx.AccessToken(ctx), 0)
	if err != nil {
		return nil, mapSampleError(err)
	}
	rows := make([]Transaction, 0, len(trades))
	for _, trade := range trades {
		rows = append(rows, Transaction{
			ID:     trade.ID,
			Date:   trade.Date,
			Type:   string(trade.Type),
			Symbol: trade.Symbol,
			Shares: trade.Shares,
			Price:  trade.Price,
			Total:  trade.Total(),
		})
	}
	return rows, nil
}

func (g sampleGateway) RecordTransaction(ctx context.Context, input TransactionInput) error {
	side, ok := sample.ParseTransactionType(input.Type)
	if !ok {
		return apperrors.EK(apperrors.KindInvalidInput, "transactions.error.type", "unknown transaction type")
	}
	_, err := g.store.Record(ctx, webctx.AccessToken(ctx), sample.Transaction{
		Date:   input.Date,
		Type:   side,
		Symbol: input.Symbol,
		Shares: input.Shares,
		Price:  input.Price,
	})
	return mapSampleError(err)
}

func mapSampleError(err error) error {
	if errors.Is(err, sample.ErrUnauthenticated) {
		return apperrors.Wrap(apperrors.KindUnauthorized, "", err)
	}
	return err
}
