package portfolio

import (
	"context"
	"errors"

	"github.com/louisbranch/portfolio.space/internal/services/portfolio/sample"
	apperrors "github.com/louisbranch/portfolio.space/internal/services/web/platform/errors"
	"github.com/louisbranch/portfolio.space/internal/services/web/platform/webctx"
)

// HoldingsReader exposes the holdings read.
type HoldingsReader interface {
	Holdings(ctx context.Context, accessToken string) ([]sample.Holding, error)
}

// NewSampleGateway builds the holdings gateway over the sample portfolio.
func NewSampleGateway(reader HoldingsReader) HoldingsGateway {
	if reader == nil {
		return unavailableGateway{}
	}
	return sampleGateway{reader: reader}
}

type sampleGateway struct {
	reader HoldingsReader
}

func (g sampleGateway) ListHoldings(ctx context.Context) ([]Holding, error) {
	holdings, err := g.reader.Holdings(ctx, webctx.AccessToken(ctx))
	if err != nil {
		if errors.Is(err, sample.ErrUnauthenticated) {
			return nil, apperrors.Wrap(apperrors.KindUnauthorized, "", err)
		}
		return nil, err
	}
	rows := make([]Holding, 0, len(holdings))
	for _, h := range holdings {
		rows = append(rows, Holding{
			Symbol:          h.Symbol,
			Name:            h.Name,
			Shares:          h.Shares,
			AveragePrice:    h.AveragePrice,
			CurrentPrice:    h.CurrentPrice,
			MarketValue:     h.MarketValue(),
			GainLoss:        h.GainLoss(),
			GainLossPercent: h.GainLossPercent(),
		})
	}
	return rows, nil
}
