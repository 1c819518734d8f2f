// Package service resolves callers to their dual identity
package service

import (
	"context"
	"net/http"

	"prokontra/internal/modkit/httpkit"
	"prokontra/internal/modkit/repokit"
	pnet "prokontra/internal/platform/net"
	"prokontra/internal/services/identity/domain"
	"prokontra/internal/services/identity/repo"
)

// Svc implements identity resolution and account bookkeeping
type Svc struct {
	Repo     repo.Repo
	verifier domain.VerifierPort
	db       repokit.TxRunner
}

// New constructs the identity service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], verifier domain.VerifierPort) *Svc {
	if db == nil {
		panic("identity.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("identity.Service requires a non nil Repo binder")
	}
	if verifier == nil {
		panic("identity.Service requires a non nil verifier")
	}
	return &Svc{Repo: binder.Bind(db), verifier: verifier, db: db}
}

// TokenFunc adapts the verifier to the httpkit auth port shape
func (s *Svc) TokenFunc() httpkit.TokenFunc {
	return func(token string) (string, string, error) {
		return s.verifier.Verify(token)
	}
}

// Ensure creates the account row if it does not exist yet
func (s *Svc) Ensure(ctx context.Context, id, role string) error {
	if role == "" {
		role = "member"
	}
	return s.Repo.Ensure(ctx, id, role)
}

// Resolve reads the dual identity off the request context. The anon half is
// set by the cookie middleware, the account half by the auth middleware.
func Resolve(r *http.Request) domain.Identity {
	return domain.Identity{
		Anon:    pnet.AnonID(r.Context()),
		Account: pnet.UserID(r.Context()),
		Role:    pnet.Role(r.Context()),
	}
}
