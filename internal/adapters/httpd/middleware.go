package httpd

import (
	"net/http"

	"go.trai.ch/stamp/internal/core/domain"
)

// CacheControl applies the stamped cache-control value to any request
// carrying a non-empty lastModified parameter. A stamped URL changes whenever
// its resource does, so such responses can be cached aggressively.
func CacheControl(cfg *domain.Config, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get(domain.ParamName) != "" {
			w.Header().Set("Cache-Control", cfg.StampedCacheControl)
		}
		next.ServeHTTP(w, r)
	})
}
