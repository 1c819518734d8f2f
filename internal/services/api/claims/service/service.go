// Package service contains the claim workflow
package service

import (
	"context"

	"prokontra/internal/modkit/repokit"
	perr "prokontra/internal/platform/errors"
	"prokontra/internal/platform/store"
	"prokontra/internal/services/api/claims/domain"
	"prokontra/internal/services/api/claims/repo"
	identdom "prokontra/internal/services/identity/domain"
)

// Service defines the service contract for claims
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	binder   repokit.Binder[repo.Repo]
	db       repokit.TxRunner
	accounts identdom.AccountsPort
}

// New creates a new claims service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], accounts identdom.AccountsPort) *Svc {
	if db == nil {
		panic("claims.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("claims.Service requires a non nil Repo binder")
	}
	if accounts == nil {
		panic("claims.Service requires an accounts port")
	}
	return &Svc{binder: binder, db: db, accounts: accounts}
}

// Claim moves anonymous reasons and merges anonymous votes onto the caller's
// account in one transaction. Running it again is a no-op that reports zeros.
func (s *Svc) Claim(ctx context.Context, ident identdom.Identity) (domain.Result, error) {
	if !ident.HasAccount() {
		return domain.Result{}, perr.Unauthorizedf("sign in to claim contributions")
	}
	if ident.Anon == "" {
		// no cookie, nothing to claim
		return domain.Result{}, nil
	}

	// the account row must exist before reasons can point at it
	if err := s.accounts.Ensure(ctx, ident.Account, ident.Role); err != nil {
		return domain.Result{}, perr.FromPostgres(err, "ensuring account")
	}

	var res domain.Result
	err := s.db.Tx(ctx, func(q store.RowQuerier) error {
		r := s.binder.Bind(q)

		moved, err := r.MoveReasons(ctx, ident.Anon, ident.Account)
		if err != nil {
			return err
		}
		merged, err := r.MergeVotes(ctx, ident.Anon, ident.Account)
		if err != nil {
			return err
		}
		if _, err := r.DeleteAnonVotes(ctx, ident.Anon); err != nil {
			return err
		}
		res = domain.Result{MovedReasons: moved, MergedVotes: merged}
		return nil
	})
	if err != nil {
		return domain.Result{}, perr.FromPostgres(err, "claiming contributions")
	}
	return res, nil
}
