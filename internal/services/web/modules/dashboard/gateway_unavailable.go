package dashboard

import (
	"context"

	apperrors "github.com/louisbranch/portfolio.space/internal/services/web/platform/errors"
)

type unavailableGateway struct{}

func (unavailableGateway) LoadDashboard(context.Context, int) (DashboardSnapshot, error) {
	return DashboardSnapshot{}, apperrors.EK(apperrors.KindUnavailable, "error.unavailable", "dashboard service is not configured")
}
