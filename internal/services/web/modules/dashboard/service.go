package dashboard

import (
	"context"
	"time"

	apperrors "github.com/louisbranch/portfolio.space/internal/services/web/platform/errors"
)

// recentLimit caps the recent transactions listed on the dashboard.
const recentLimit = 5

// AllocationSlice is the value held in one asset class.
type AllocationSlice struct {
	Asset string
	Value float64
}

// RecentTransaction is one trade summarized for the dashboard.
type RecentTransaction struct {
	Date   time.Time
	Type   string
	Symbol string
	Total  float64
}

// DashboardSnapshot contains the figures the dashboard renders.
type DashboardSnapshot struct {
	TotalValue         float64
	DailyChange        float64
	DailyChangePercent float64
	TotalGain          float64
	Allocation         []AllocationSlice
	Recent             []RecentTransaction
}

// DashboardGateway loads dashboard data for the bearer token carried by ctx.
type DashboardGateway interface {
	LoadDashboard(ctx context.Context, recentLimit int) (DashboardSnapshot, error)
}

// AllocationRow is an allocation slice with its share of the total.
type AllocationRow struct {
	Asset string
	Value float64
	Share float64
}

// DashboardView is the dashboard view model.
type DashboardView struct {
	TotalValue         float64
	DailyChange        float64
	DailyChangePercent float64
	TotalGain          float64
	Allocation         []AllocationRow
	Recent             []RecentTransaction
}

type service struct {
	gateway DashboardGateway
}

func newService(gateway DashboardGateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway}
}

func (s service) loadDashboard(ctx context.Context) (DashboardView, error) {
	snapshot, err := s.gateway.LoadDashboard(ctx, recentLimit)
	if err != nil {
		if apperrors.KindOf(err) == apperrors.KindUnknown {
			return DashboardView{}, apperrors.Wrap(apperrors.KindUnavailable, "error.unavailable", err)
		}
		return DashboardView{}, err
	}
	view := DashboardView{
		TotalValue:         snapshot.TotalValue,
		DailyChange:        snapshot.DailyChange,
		DailyChangePercent: snapshot.DailyChangePercent,
		TotalGain:          snapshot.TotalGain,
		Recent:             snapshot.Recent,
	}
	if len(view.Recent) > recentLimit {
		view.Recent = view.Recent[:recentLimit]
	}
	var allocated float64
	for _, slice := range snapshot.Allocation {
		allocated += slice.Value
	}
	for _, slice := range snapshot.Allocation {
		row := AllocationRow{Asset: slice.Asset, Value: slice.Value}
		if allocated > 0 {
			row.Share = slice.Value / allocated * 100
		}
		view.Allocation = append(view.Allocation, row)
	}
	return view, nil
}
