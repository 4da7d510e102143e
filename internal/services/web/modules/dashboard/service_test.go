package dashboard

import (
	"context"
	"errors"
	"math"
	"net/http"
	"testing"
	"time"

	apperrors "github.com/louisbranch/portfolio.space/internal/services/web/platform/errors"
)

func TestLoadDashboardComputesAllocationShares(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{snapshot: DashboardSnapshot{
		TotalValue: 200,
		Allocation: []AllocationSlice{{Asset: "Stocks", Value: 150}, {Asset: "Cash", Value: 50}},
	}}
	view, err := newService(gateway).loadDashboard(context.Background())
	if err != nil {
		t.Fatalf("loadDashboard() error = %v", err)
	}
	if len(view.Allocation) != 2 {
		t.Fatalf("len(Allocation) = %d, want 2", len(view.Allocation))
	}
	if math.Abs(view.Allocation[0].Share-75) > 1e-9 || math.Abs(view.Allocation[1].Share-25) > 1e-9 {
		t.Fatalf("shares = %v, %v, want 75, 25", view.Allocation[0].Share, view.Allocation[1].Share)
	}
}

func TestLoadDashboardEmptyAllocationHasZeroShares(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{snapshot: DashboardSnapshot{Allocation: []AllocationSlice{{Asset: "Cash"}}}}
	view, err := newService(gateway).loadDashboard(context.Background())
	if err != nil {
		t.Fatalf("loadDashboard() error = %v", err)
	}
	if view.Allocation[0].Share != 0 {
		t.Fatalf("Share = %v, want 0", view.Allocation[0].Share)
	}
}

func TestLoadDashboardCapsRecentTransactions(t *testing.T) {
	t.Parallel()

	recent := make([]RecentTransaction, recentLimit+3)
	for i := range recent {
		recent[i] = RecentTransaction{Date: time.Date(2023, 9, i+1, 0, 0, 0, 0, time.UTC)}
	}
	view, err := newService(&fakeGateway{snapshot: DashboardSnapshot{Recent: recent}}).loadDashboard(context.Background())
	if err != nil {
		t.Fatalf("loadDashboard() error = %v", err)
	}
	if len(view.Recent) != recentLimit {
		t.Fatalf("len(Recent) = %d, want %d", len(view.Recent), recentLimit)
	}
}

func TestLoadDashboardMapsGatewayErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "untyped", err: errors.New("boom"), want: http.StatusServiceUnavailable},
		{name: "typed", err: apperrors.E(apperrors.KindUnauthorized, "no token"), want: http.StatusUnauthorized},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := newService(&fakeGateway{err: tc.err}).loadDashboard(context.Background())
			if got := apperrors.HTTPStatus(err); got != tc.want {
				t.Fatalf("HTTPStatus() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestNewServiceWithoutGatewayIsUnavailable(t *testing.T) {
	t.Parallel()

	_, err := newService(nil).loadDashboard(context.Background())
	if got := apperrors.HTTPStatus(err); got != http.StatusServiceUnavailable {
		t.Fatalf("HTTPStatus() = %d, want %d", got, http.StatusServiceUnavailable)
	}
}
