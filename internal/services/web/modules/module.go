// Package modules defines web module registry helpers.
package modules

import (
	"time"

	"github.com/louisbranch/portfolio.space/internal/services/web/gate"
	"github.com/louisbranch/portfolio.space/internal/services/web/module"
	"github.com/louisbranch/portfolio.space/internal/services/web/modules/dashboard"
	"github.com/louisbranch/portfolio.space/internal/services/web/modules/portfolio"
	"github.com/louisbranch/portfolio.space/internal/services/web/modules/publicauth"
	"github.com/louisbranch/portfolio.space/internal/services/web/modules/settings"
	"github.com/louisbranch/portfolio.space/internal/services/web/modules/transactions"
	"github.com/louisbranch/portfolio.space/internal/services/web/platform/ratelimit"
)

// Mount aliases the module mount contract.
type Mount = module.Mount

// Module aliases the module interface contract.
type Module = module.Module

// PortfolioBackend is the data service behind every protected area. Each
// module receives it through its own narrow gateway interface.
type PortfolioBackend interface {
	dashboard.PortfolioReader
	portfolio.HoldingsReader
	transactions.TradeStore
	settings.BrokerLinker
}

// Dependencies carries the collaborators required to compose the web module
// registry. A nil Auth or Portfolio leaves the affected modules in degraded
// mode, where they render an unavailable page instead of failing to mount.
type Dependencies struct {
	Module        module.Dependencies
	Policy        *gate.Policy
	Auth          publicauth.AuthGateway
	Portfolio     PortfolioBackend
	LoginLimiter  *ratelimit.Registry
	LoginRecorder publicauth.LoginRecorder
	// Now defaults form dates. Nil means time.Now.
	Now func() time.Time
}
