package app

import (
	"net/http"

	"github.com/louisbranch/portfolio.space/internal/services/web/module"
)

// BuildRootHandler composes a root mux using the configured module groups.
func BuildRootHandler(cfg Config) (http.Handler, error) {
	public := append([]module.Module(nil), cfg.PublicModules...)
	if cfg.Assets != nil {
		public = append(public, staticModule{assets: cfg.Assets})
	}
	return Compose(ComposeInput{
		Policy:           cfg.Policy,
		Gate:             cfg.Gate,
		PublicModules:    public,
		ProtectedModules: cfg.ProtectedModules,
		RequestMeta:      cfg.RequestMeta,
	})
}
