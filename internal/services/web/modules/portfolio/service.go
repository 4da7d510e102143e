package portfolio

import (
	"context"
	"slices"
	"strings"

	apperrors "github.com/louisbranch/portfolio.space/internal/services/web/platform/errors"
	"github.com/louisbranch/portfolio.space/internal/services/web/platform/paging"
)

// Holding is one row of the holdings grid.
type Holding struct {
	Symbol          string
	Name            string
	Shares          float64
	AveragePrice    float64
	CurrentPrice    float64
	MarketValue     float64
	GainLoss        float64
	GainLossPercent float64
}

// HoldingsGateway lists holdings for the bearer token carried by ctx.
type HoldingsGateway interface {
	ListHoldings(ctx context.Context) ([]Holding, error)
}

// HoldingsView is one page of the holdings grid.
type HoldingsView struct {
	Rows   []Holding
	Window paging.Window
}

type service struct {
	gateway HoldingsGateway
}

func newService(gateway HoldingsGateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway}
}

func (s service) listHoldings(ctx context.Context, page, size int) (HoldingsView, error) {
	holdings, err := s.gateway.ListHoldings(ctx)
	if err != nil {
		if apperrors.KindOf(err) == apperrors.KindUnknown {
			return HoldingsView{}, apperrors.Wrap(apperrors.KindUnavailable, "error.unavailable", err)
		}
		return HoldingsView{}, err
	}
	holdings = slices.Clone(holdings)
	slices.SortStableFunc(holdings, func(a, b Holding) int {
		return strings.Compare(a.Symbol, b.Symbol)
	})
	window := paging.NewWindow(len(holdings), page, size)
	return HoldingsView{Rows: paging.Slice(holdings, window), Window: window}, nil
}
