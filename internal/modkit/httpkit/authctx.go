package httpkit

import (
	"net/http"
	"strings"

	perrs "prokontra/internal/platform/errors"
	pnet "prokontra/internal/platform/net"
)

// User returns the authenticated user id from the request context
func User(r *http.Request) (string, error) {
	uid := pnet.UserID(r.Context())
	if uid == "" {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	return uid, nil
}

// Anon returns the anonymous actor token from the request context
func Anon(r *http.Request) (string, error) {
	aid := pnet.AnonID(r.Context())
	if aid == "" {
		return "", perrs.Unauthorizedf("missing anonymous token")
	}
	return aid, nil
}

// Role returns the authenticated account role from the request context
// empty string means no authenticated account
func Role(r *http.Request) string {
	return pnet.Role(r.Context())
}

// MustUser returns the authenticated user id or panics
func MustUser(r *http.Request) string {
	uid, err := User(r)
	if err != nil {
		panic(err)
	}
	return uid
}

// MustAnon returns the anonymous actor token or panics
// only use on routes behind the anon-mint middleware
func MustAnon(r *http.Request) string {
	aid, err := Anon(r)
	if err != nil {
		panic(err)
	}
	return aid
}

// JWT returns the raw bearer token from the Authorization header
func JWT(r *http.Request) (string, error) {
	authz := r.Header.Get("Authorization")
	if strings.TrimSpace(authz) == "" {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	// case-insensitive Bearer prefix (don't trim the whole header first)
	const prefix = "bearer "
	if len(authz) < len(prefix) || strings.ToLower(authz[:len(prefix)]) != prefix {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	raw := strings.TrimSpace(authz[len(prefix):])
	if raw == "" {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	return raw, nil
}

// MustJWT returns the raw bearer token or panics
// only use on routes protected by the auth middleware
func MustJWT(r *http.Request) string {
	raw, err := JWT(r)
	if err != nil {
		panic(err)
	}
	return raw
}
