package publicauth

import (
	"context"
	"errors"
	"strings"

	apperrors "github.com/louisbranch/portfolio.space/internal/services/web/platform/errors"
	"github.com/louisbranch/portfolio.space/internal/services/web/session"
)

// ErrInvalidCredentials reports a rejected email/password pair.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthGateway abstracts sign-in and sign-out behind session types.
type AuthGateway interface {
	// SignIn verifies the credential and starts a session.
	SignIn(ctx context.Context, email, password string) (session.Session, error)
	// SignOut destroys a session.
	SignOut(ctx context.Context, sessionID string) error
}

type service struct {
	auth AuthGateway
}

func newServiceWithGateway(gateway AuthGateway) service {
	if gateway == nil {
		gateway = unavailableAuthGateway{}
	}
	return service{auth: gateway}
}

func (service) healthBody() string {
	return "ok"
}

func (s service) signIn(ctx context.Context, email, password string) (session.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return session.Session{}, apperrors.Wrap(apperrors.KindUnauthorized, "login.error.invalid", ErrInvalidCredentials)
	}
	created, err := s.auth.SignIn(ctx, email, password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			return session.Session{}, apperrors.Wrap(apperrors.KindUnauthorized, "login.error.invalid", err)
		}
		if apperrors.KindOf(err) == apperrors.KindUnknown {
			return session.Session{}, apperrors.Wrap(apperrors.KindUnavailable, "login.error.unavailable", err)
		}
		return session.Session{}, err
	}
	return created, nil
}

func (s service) signOut(ctx context.Context, sessionID string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil
	}
	return s.auth.SignOut(ctx, sessionID)
}

type unavailableAuthGateway struct{}

func (unavailableAuthGateway) SignIn(context.Context, string, string) (session.Session, error) {
	return session.Session{}, apperrors.EK(apperrors.KindUnavailable, "login.error.unavailable", "auth gateway is not configured")
}

func (unavailableAuthGateway) SignOut(context.Context, string) error {
	return apperrors.E(apperrors.KindUnavailable, "auth gateway is not configured")
}
