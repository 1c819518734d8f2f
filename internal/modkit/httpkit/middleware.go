package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	phttp "prokontra/internal/platform/net/http"
	"prokontra/internal/platform/net/middleware"
)

// CommonStack is the baseline middleware every mounted module gets. Identity
// and rate limiting layer on top of this in the composition root
func CommonStack() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		// tracing / correlation
		middleware.RequestID(),
		middleware.RealIP(),

		// safety
		middleware.RecoverJSON,

		// cache / freshness
		middleware.NoCache(),

		// observability
		middleware.Logger(),

		// cross-origin, defaults filled by the wrapper
		middleware.CORS(middleware.CORSOptions{}),
		middleware.Compress(flate.BestSpeed),
		middleware.Heartbeat("/health"),
		middleware.RedirectSlashes(),
		middleware.StripSlashes(),
		middleware.Timeout(30 * time.Second),
	}
}

// Auth wires the auth middleware to the platform JSON writer
func Auth(p middleware.AuthPort) func(http.Handler) http.Handler {
	return middleware.Auth(p, phttp.JSON)
}

// AuthOptional wires the optional auth middleware to the platform JSON writer
func AuthOptional(p middleware.AuthPort) func(http.Handler) http.Handler {
	return middleware.AuthOptional(p, phttp.JSON)
}
