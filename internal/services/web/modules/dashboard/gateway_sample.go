package dashboard

import (
	"context"
	"errors"

	"github.com/louisbranch/portfolio.space/internal/services/portfolio/sample"
	apperrors "github.com/louisbranch/portfolio.space/internal/services/web/platform/errors"
	"github.com/louisbranch/portfolio.space/internal/services/web/platform/webctx"
)

// PortfolioReader exposes the portfolio reads the dashboard needs.
type PortfolioReader interface {
	Summary(ctx context.Context, accessToken string) (sample.Summary, error)
	Holdings(ctx context.Context, accessToken string) ([]sample.Holding, error)
	Transactions(ctx context.Context, accessToken string, limit int) ([]sample.Transaction, error)
}

// NewSampleGateway builds the dashboard gateway over the sample portfolio.
func NewSampleGateway(reader PortfolioReader) DashboardGateway {
	if reader == nil {
		return unavailableGateway{}
	}
	return sampleGateway{reader: reader}
}

type sampleGateway struct {
	reader PortfolioReader
}

func (g sampleGateway) LoadDashboard(ctx context.Context, recentLimit int) (DashboardSnapshot, error) {
	accessToken := webctx.AccessToken(ctx)
	summary, err := g.reader.Summary(ctx, accessToken)
	if err != nil {
		return DashboardSnapshot{}, mapReadError(err)
	}
	holdings, err := g.reader.Holdings(ctx, accessToken)
	if err != nil {
		return DashboardSnapshot{}, mapReadError(err)
	}
	trades, err := g.reader.Transactions(ctx, accessToken, recentLimit)
	if err != nil {
		return DashboardSnapshot{}, mapReadError(err)
	}

	snapshot := DashboardSnapshot{
		TotalValue:         summary.TotalValue,
		DailyChange:        summary.DailyChange,
		DailyChangePercent: summary.DailyChangePercent,
	}
	for _, a := range summary.Allocation {
		snapshot.Allocation = append(snapshot.Allocation, AllocationSlice{Asset: a.Asset, Value: a.Value})
	}
	for _, h := range holdings {
		snapshot.TotalGain += h.GainLoss()
	}
	for _, trade := range trades {
		snapshot.Recent = append(snapshot.Recent, RecentTransaction{
			Date:   trade.Date,
			Type:   string(trade.Type),
			Symbol: trade.Symbol,
			Total:  trade.Total(),
		})
	}
	return snapshot, nil
}

func mapReadError(err error) error {
	if errors.Is(err, sample.ErrUnauthenticated) {
		return apperrors.Wrap(apperrors.KindUnauthorized, "", err)
	}
	return err
}
