package app

import (
	"io/fs"

	"github.com/louisbranch/portfolio.space/internal/services/web/gate"
	"github.com/louisbranch/portfolio.space/internal/services/web/module"
	"github.com/louisbranch/portfolio.space/internal/services/web/platform/requestmeta"
)

// Config captures the composition inputs for the web root handler.
type Config struct {
	Policy           *gate.Policy
	Gate             *gate.Middleware
	RequestMeta      requestmeta.Policy
	PublicModules    []module.Module
	ProtectedModules []module.Module
	// Assets is served under /static/ when set.
	Assets fs.FS
}
