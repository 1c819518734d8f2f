package middleware

import (
	"net"
	"net/http"

	perr "prokontra/internal/platform/errors"
	pnet "prokontra/internal/platform/net"
	"prokontra/internal/platform/ratelimit"
)

// RateLimit guards a route group with the given limiter. Keys are
// ip:action:actor so one actor cannot starve another behind the same NAT,
// and one IP cannot starve every actor behind it.
func RateLimit(
	l ratelimit.Limiter,
	action string,
	write func(w http.ResponseWriter, status int, body any),
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if l == nil {
				next.ServeHTTP(w, r)
				return
			}
			key := clientIP(r) + ":" + action + ":" + actorKey(r)
			if !l.Allow(key) {
				err := perr.Newf(perr.ErrorCodeTooManyRequests, "too many %s requests, slow down", action)
				status, body := pnet.Error(err, pnet.RequestID(r.Context()))
				write(w, status, body)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// actorKey prefers the authenticated account, falls back to the anon token
func actorKey(r *http.Request) string {
	if uid := pnet.UserID(r.Context()); uid != "" {
		return uid
	}
	return pnet.AnonID(r.Context())
}

// clientIP strips the port from RemoteAddr. RealIP() runs earlier in the
// stack, so RemoteAddr already reflects X-Forwarded-For when present.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
