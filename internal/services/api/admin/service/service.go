// Package service contains the admin workflows
package service

import (
	"context"

	"prokontra/internal/modkit/repokit"
	perr "prokontra/internal/platform/errors"
	"prokontra/internal/services/api/admin/domain"
	"prokontra/internal/services/api/admin/repo"
	policydom "prokontra/internal/services/api/policy/domain"
	reasonsdom "prokontra/internal/services/api/reasons/domain"
	identdom "prokontra/internal/services/identity/domain"
)

// Service defines the service contract for admin
type Service interface {
	Moderate(ctx context.Context, reasonID string, in reasonsdom.ModerateInput) error
	Stats(ctx context.Context) (domain.Stats, error)

	ListWords(ctx context.Context) ([]policydom.BannedWord, error)
	AddWord(ctx context.Context, in policydom.AddInput) (policydom.BannedWord, error)
	RemoveWord(ctx context.Context, in policydom.RemoveInput) error
}

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner

	moderation reasonsdom.ModerationPort
	policy     policydom.ServicePort
}

// New creates a new admin service
func New(
	db repokit.TxRunner,
	binder repokit.Binder[repo.Repo],
	moderation reasonsdom.ModerationPort,
	policy policydom.ServicePort,
) *Svc {
	if db == nil {
		panic("admin.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("admin.Service requires a non nil Repo binder")
	}
	if moderation == nil {
		panic("admin.Service requires a moderation port")
	}
	if policy == nil {
		panic("admin.Service requires a policy port")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db, moderation: moderation, policy: policy}
}

// RequireAdmin rejects callers whose token does not carry the admin role
func RequireAdmin(ident identdom.Identity) error {
	if !ident.HasAccount() {
		return perr.Unauthorizedf("admin endpoints require a signed in caller")
	}
	if !ident.IsAdmin() {
		return perr.Forbiddenf("admin role required")
	}
	return nil
}

// Moderate applies the requested toggles to a reason
func (s *Svc) Moderate(ctx context.Context, reasonID string, in reasonsdom.ModerateInput) error {
	if in.Deleted == nil && in.Featured == nil {
		return perr.InvalidArgf("nothing to change")
	}
	if in.Deleted != nil {
		if err := s.moderation.SetDeleted(ctx, reasonID, *in.Deleted); err != nil {
			return err
		}
	}
	if in.Featured != nil {
		if err := s.moderation.SetFeatured(ctx, reasonID, *in.Featured); err != nil {
			return err
		}
	}
	return nil
}

// Stats returns the activity snapshot
func (s *Svc) Stats(ctx context.Context) (domain.Stats, error) {
	row, err := s.Repo.Stats(ctx)
	if err != nil {
		return domain.Stats{}, perr.FromPostgres(err, "loading stats")
	}
	return domain.Stats{Topics: row.Topics, Reasons: row.Reasons, Votes: row.Votes, Actors: row.Actors}, nil
}

// ListWords returns the banned word list
func (s *Svc) ListWords(ctx context.Context) ([]policydom.BannedWord, error) {
	return s.policy.List(ctx)
}

// AddWord adds an entry to the banned word list
func (s *Svc) AddWord(ctx context.Context, in policydom.AddInput) (policydom.BannedWord, error) {
	return s.policy.Add(ctx, in)
}

// RemoveWord drops an entry from the banned word list
func (s *Svc) RemoveWord(ctx context.Context, in policydom.RemoveInput) error {
	return s.policy.Remove(ctx, in)
}
