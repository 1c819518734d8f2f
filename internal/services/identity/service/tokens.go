package service

import (
	"github.com/golang-jwt/jwt/v5"

	perr "prokontra/internal/platform/errors"
)

// bearerClaims is the payload the login provider signs for us. Subject
// carries the account id; Role is our only custom claim.
type bearerClaims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// HMACVerifier validates HS256 bearer tokens minted by the login provider.
// Issuance lives with the provider; this side only verifies.
type HMACVerifier struct {
	secret []byte
}

// NewHMACVerifier builds a verifier over a shared secret
func NewHMACVerifier(secret []byte) *HMACVerifier {
	if len(secret) == 0 {
		panic("identity.HMACVerifier requires a non-empty secret")
	}
	return &HMACVerifier{secret: secret}
}

// Verify implements domain.VerifierPort
func (v *HMACVerifier) Verify(token string) (string, string, error) {
	parsed, err := jwt.ParseWithClaims(token, &bearerClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, perr.Unauthorizedf("unexpected signing method %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", "", perr.Unauthorizedf("invalid bearer token")
	}
	claims, ok := parsed.Claims.(*bearerClaims)
	if !ok || claims.Subject == "" {
		return "", "", perr.Unauthorizedf("bearer token missing subject")
	}
	return claims.Subject, claims.Role, nil
}
