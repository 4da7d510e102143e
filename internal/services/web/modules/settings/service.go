package settings

import (
	"context"
	"strings"

	"github.com/louisbranch/portfolio.space/internal/services/web/i18n"
	apperrors "github.com/louisbranch/portfolio.space/internal/services/web/platform/errors"
	"github.com/louisbranch/portfolio.space/internal/services/web/platform/preferences"
)

// SettingsGateway links broker API credentials for the bearer token carried
// by ctx.
type SettingsGateway interface {
	SaveAPICredentials(ctx context.Context, apiKey, apiSecret string) error
}

type service struct {
	gateway SettingsGateway
}

func newService(gateway SettingsGateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway}
}

// preferencesForm holds the submitted toggles and currency.
type preferencesForm struct {
	DarkMode           bool
	EmailNotifications bool
	Currency           string
}

// parsePreferences validates form. Unknown currencies are rejected rather
// than silently defaulted so the user sees the problem.
func parsePreferences(form preferencesForm) (preferences.Preferences, error) {
	currency, ok := i18n.ParseCurrency(form.Currency)
	if !ok {
		return preferences.Preferences{}, apperrors.EK(apperrors.KindInvalidInput, "settings.error.currency", "unsupported currency")
	}
	return preferences.Preferences{
		DarkMode:           form.DarkMode,
		EmailNotifications: form.EmailNotifications,
		Currency:           currency,
	}, nil
}

func (s service) saveAPICredentials(ctx context.Context, apiKey, apiSecret string) error {
	apiKey = strings.TrimSpace(apiKey)
	apiSecret = strings.TrimSpace(apiSecret)
	if apiKey == "" || apiSecret == "" {
		return apperrors.EK(apperrors.KindInvalidInput, "settings.error.api_key", "api key and secret are required")
	}
	if err := s.gateway.SaveAPICredentials(ctx, apiKey, apiSecret); err != nil {
		if apperrors.KindOf(err) == apperrors.KindUnknown {
			return apperrors.Wrap(apperrors.KindUnavailable, "error.unavailable", err)
		}
		return err
	}
	return nil
}
