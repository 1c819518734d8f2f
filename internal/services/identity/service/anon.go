package service

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	pnet "prokontra/internal/platform/net"
)

// CookieName is the anonymous token cookie
const CookieName = "pk_uid"

// cookieTTL keeps anonymous history alive for five years
const cookieTTL = 5 * 365 * 24 * time.Hour

// AnonCookie mints a UUID cookie for first-time visitors and puts the token
// on the request context for everyone. Invalid cookie values are replaced
// rather than trusted.
func AnonCookie(secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ""
			if c, err := r.Cookie(CookieName); err == nil {
				if _, perr := uuid.Parse(c.Value); perr == nil {
					token = c.Value
				}
			}
			if token == "" {
				token = uuid.NewString()
				http.SetCookie(w, &http.Cookie{
					Name:     CookieName,
					Value:    token,
					Path:     "/",
					Expires:  time.Now().Add(cookieTTL),
					MaxAge:   int(cookieTTL / time.Second),
					HttpOnly: true,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
				})
			}
			ctx := pnet.WithAnon(r.Context(), token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
