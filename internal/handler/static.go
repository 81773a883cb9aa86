package handler

import (
	"net/http"

	"github.com/mediweb/website/internal/webutil"
)

// StaticHandler serves files under the static directory with cache headers
// matched to the asset type.
type StaticHandler struct {
	fileServer http.Handler
}

// NewStaticHandler creates a handler serving files from dir at /static/.
func NewStaticHandler(dir string) *StaticHandler {
	return &StaticHandler{
		fileServer: http.StripPrefix("/static/", http.FileServer(http.Dir(dir))),
	}
}

// RegisterRoutes registers the static file route with the provided mux.
func (h *StaticHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("GET /static/", h)
}

func (h *StaticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	webutil.SetCacheHeaders(w, webutil.ClassifyPath(r.URL.Path))
	h.fileServer.ServeHTTP(w, r)
}
