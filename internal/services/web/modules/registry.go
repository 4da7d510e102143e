package modules

import (
	"github.com/louisbranch/portfolio.space/internal/services/web/modules/dashboard"
	"github.com/louisbranch/portfolio.space/internal/services/web/modules/portfolio"
	"github.com/louisbranch/portfolio.space/internal/services/web/modules/publicauth"
	"github.com/louisbranch/portfolio.space/internal/services/web/modules/settings"
	"github.com/louisbranch/portfolio.space/internal/services/web/modules/transactions"
)

// DefaultPublicModules returns the modules served without a session: the
// root shell (landing, health, logout) and the auth section.
func DefaultPublicModules(deps Dependencies) []Module {
	opts := []publicauth.Option{
		publicauth.WithDependencies(deps.Module),
		publicauth.WithLoginLimiter(deps.LoginLimiter),
		publicauth.WithRecorder(deps.LoginRecorder),
	}
	if deps.Policy != nil {
		opts = append(opts, publicauth.WithPolicy(deps.Policy))
	}
	if deps.Auth != nil {
		opts = append(opts, publicauth.WithGateway(deps.Auth))
	}
	return []Module{
		publicauth.NewShell(opts...),
		publicauth.NewLogin(opts...),
	}
}

// DefaultProtectedModules returns the session-gated portfolio areas in
// navigation order.
func DefaultProtectedModules(deps Dependencies) []Module {
	dashboardOpts := []dashboard.Option{dashboard.WithDependencies(deps.Module)}
	portfolioOpts := []portfolio.Option{portfolio.WithDependencies(deps.Module)}
	transactionsOpts := []transactions.Option{
		transactions.WithDependencies(deps.Module),
		transactions.WithClock(deps.Now),
	}
	settingsOpts := []settings.Option{settings.WithDependencies(deps.Module)}
	if backend := deps.Portfolio; backend != nil {
		dashboardOpts = append(dashboardOpts, dashboard.WithGateway(dashboard.NewSampleGateway(backend)))
		portfolioOpts = append(portfolioOpts, portfolio.WithGateway(portfolio.NewSampleGateway(backend)))
		transactionsOpts = append(transactionsOpts, transactions.WithGateway(transactions.NewSampleGateway(backend)))
		settingsOpts = append(settingsOpts, settings.WithGateway(settings.NewSampleGateway(backend)))
	}
	return []Module{
		dashboard.New(dashboardOpts...),
		portfolio.New(portfolioOpts...),
		transactions.New(transactionsOpts...),
		settings.New(settingsOpts...),
	}
}
