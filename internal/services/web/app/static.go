package app

import (
	"io/fs"
	"net/http"

	"github.com/louisbranch/portfolio.space/internal/services/web/module"
	"github.com/louisbranch/portfolio.space/internal/services/web/platform/httpx"
	"github.com/louisbranch/portfolio.space/internal/services/web/routepath"
)

// staticModule serves embedded assets. Asset names carry no content hash,
// so clients revalidate on every load.
type staticModule struct {
	assets fs.FS
}

func (staticModule) ID() string { return "static" }

func (m staticModule) Mount() (module.Mount, error) {
	files := http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(m.assets)))
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			httpx.MethodNotAllowed(w, http.MethodGet, http.MethodHead)
			return
		}
		w.Header().Set("Cache-Control", "no-cache")
		files.ServeHTTP(w, r)
	})
	return module.Mount{Prefix: routepath.StaticPrefix, Handler: handler}, nil
}
