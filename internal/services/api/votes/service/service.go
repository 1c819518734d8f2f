// Package service contains vote aggregation workflows
package service

import (
	"context"

	"github.com/google/uuid"

	"prokontra/internal/modkit/repokit"
	perr "prokontra/internal/platform/errors"
	"prokontra/internal/platform/store"
	"prokontra/internal/services/api/votes/domain"
	"prokontra/internal/services/api/votes/repo"
	identdom "prokontra/internal/services/identity/domain"
)

// Service defines the service contract for votes
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New creates a new votes service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("votes.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("votes.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// Cast records or replaces the caller's vote on a reason. Later casts win.
func (s *Svc) Cast(ctx context.Context, ident identdom.Identity, in domain.CastInput) error {
	if in.Value < -1 || in.Value > 1 {
		return perr.Newf(perr.ErrorCodeValidation, "vote value must be -1, 0, or 1")
	}
	if ident.Actor() == "" {
		return perr.Unauthorizedf("no identity on request")
	}

	ok, err := s.Repo.ReasonExists(ctx, in.ReasonID)
	if err != nil {
		return perr.FromPostgres(err, "checking reason")
	}
	if !ok {
		return perr.NotFoundf("reason %s not found", in.ReasonID)
	}

	id := uuid.NewString()
	switch {
	case ident.HasAccount() && ident.Anon != "":
		// Signed-in caller still carrying an anon cookie: the account row
		// supersedes any unclaimed anon vote, or the same person counts twice.
		err = s.db.Tx(ctx, func(q store.RowQuerier) error {
			r := s.binder.Bind(q)
			if err := r.UpsertAccount(ctx, id, in.ReasonID, ident.Account, in.Value); err != nil {
				return err
			}
			return r.DeleteAnon(ctx, in.ReasonID, ident.Anon)
		})
	case ident.HasAccount():
		err = s.Repo.UpsertAccount(ctx, id, in.ReasonID, ident.Account, in.Value)
	default:
		err = s.Repo.UpsertAnon(ctx, id, in.ReasonID, ident.Anon, in.Value)
	}
	if err != nil {
		return perr.FromPostgres(err, "casting vote")
	}
	return nil
}

// ScoreOf returns the aggregate for one reason
func (s *Svc) ScoreOf(ctx context.Context, reasonID string) (domain.Score, error) {
	ok, err := s.Repo.ReasonExists(ctx, reasonID)
	if err != nil {
		return domain.Score{}, perr.FromPostgres(err, "checking reason")
	}
	if !ok {
		return domain.Score{}, perr.NotFoundf("reason %s not found", reasonID)
	}
	scores, err := s.ScoresFor(ctx, []string{reasonID})
	if err != nil {
		return domain.Score{}, err
	}
	if sc, ok := scores[reasonID]; ok {
		return sc, nil
	}
	// no votes yet
	return domain.Score{ReasonID: reasonID}, nil
}

// ScoresFor implements domain.ScoresPort
func (s *Svc) ScoresFor(ctx context.Context, reasonIDs []string) (map[string]domain.Score, error) {
	rows, err := s.Repo.ScoresFor(ctx, reasonIDs)
	if err != nil {
		return nil, perr.FromPostgres(err, "loading scores")
	}
	out := make(map[string]domain.Score, len(rows))
	for _, r := range rows {
		out[r.ReasonID] = domain.Score{
			ReasonID: r.ReasonID,
			Score:    r.Score,
			Up:       r.Up,
			Neutral:  r.Neutral,
			Down:     r.Down,
		}
	}
	return out, nil
}

// VotesOf implements domain.ScoresPort. Account rows win over anon rows.
func (s *Svc) VotesOf(ctx context.Context, ident identdom.Identity, reasonIDs []string) (map[string]int, error) {
	rows, err := s.Repo.VotesOf(ctx, ident.Account, ident.Anon, reasonIDs)
	if err != nil {
		return nil, perr.FromPostgres(err, "loading own votes")
	}
	out := make(map[string]int, len(rows))
	for _, v := range rows {
		if v.IsAccount {
			out[v.ReasonID] = v.Value
		}
	}
	for _, v := range rows {
		if !v.IsAccount {
			if _, taken := out[v.ReasonID]; !taken {
				out[v.ReasonID] = v.Value
			}
		}
	}
	return out, nil
}
