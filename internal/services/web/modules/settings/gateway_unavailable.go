package settings

import (
	"context"

	apperrors "github.com/louisbranch/portfolio.space/internal/services/web/platform/errors"
)

type unavailableGateway struct{}

func (unavailableGateway) SaveAPICredentials(context.Context, string, string) error {
	return apperrors.EK(apperrors.KindUnavailable, "error.unavailable", "settings service is not configured")
}
