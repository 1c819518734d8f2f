package middleware

import (
	"net/http"

	pnet "prokontra/internal/platform/net"
)

// AuthPort is the seam the identity service implements for bearer auth
type AuthPort interface {
	// Parse returns an account id and role from the request or an error
	Parse(r *http.Request) (accountID string, role string, err error)
}

// Auth is a no-op until wired. It uses the port when provided
func Auth(p AuthPort, write func(w http.ResponseWriter, status int, body any)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p == nil {
				next.ServeHTTP(w, r)
				return
			}
			uid, role, err := p.Parse(r)
			if err != nil {
				status, body := pnet.Error(err, pnet.RequestID(r.Context()))
				write(w, status, body)
				return
			}
			ctx := pnet.WithUser(r.Context(), uid, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AuthOptional attaches the account identity when a bearer token is present
// and lets anonymous requests through untouched. A token that is present but
// bad still fails the request, silently ignoring it would let a stale session
// masquerade as anonymous
func AuthOptional(p AuthPort, write func(w http.ResponseWriter, status int, body any)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p == nil || r.Header.Get("Authorization") == "" {
				next.ServeHTTP(w, r)
				return
			}
			uid, role, err := p.Parse(r)
			if err != nil {
				status, body := pnet.Error(err, pnet.RequestID(r.Context()))
				write(w, status, body)
				return
			}
			ctx := pnet.WithUser(r.Context(), uid, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
