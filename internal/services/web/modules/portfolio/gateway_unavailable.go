package portfolio

import (
	"context"

	apperrors "github.com/louisbranch/portfolio.space/internal/services/web/platform/errors"
)

type unavailableGateway struct{}

func (unavailableGateway) ListHoldings(context.Context) ([]Holding, error) {
	return nil, apperrors.EK(apperrors.KindUnavailable, "error.unavailable", "portfolio service is not configured")
}
