package settings

import (
	"context"
	"errors"

	"github.com/louisbranch/portfolio.space/internal/services/portfolio/sample"
	apperrors "github.com/louisbranch/portfolio.space/internal/services/web/platform/errors"
	"github.com/louisbranch/portfolio.space/internal/services/web/platform/webctx"
)

// BrokerLinker exposes broker credential linking.
type BrokerLinker interface {
	LinkBroker(ctx context.Context, accessToken, apiKey, apiSecret string) error
}

// NewSampleGateway builds the settings gateway over the sample portfolio.
func NewSampleGateway(linker BrokerLinker) SettingsGateway {
	if linker == nil {
		return unavailableGateway{}
	}
	return sampleGateway{linker: linker}
}

type sampleGateway struct {
	linker BrokerLinker
}

func (g sampleGateway) SaveAPICredentials(ctx context.Context, apiKey, apiSecret string) error {
	err := g.linker.LinkBroker(ctx, webctx.AccessToken(ctx), apiKey, apiSecret)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sample.ErrUnauthenticated):
		return apperrors.Wrap(apperrors.KindUnauthorized, "", err)
	case errors.Is(err, sample.ErrIncompleteBrokerCredentials):
		return apperrors.Wrap(apperrors.KindInvalidInput, "settings.error.api_key", err)
	default:
		return err
	}
}
