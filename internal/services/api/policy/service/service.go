// Package service enforces the content policy word list
package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"prokontra/internal/core/textnorm"
	"prokontra/internal/modkit/repokit"
	perr "prokontra/internal/platform/errors"
	"prokontra/internal/services/api/policy/domain"
	"prokontra/internal/services/api/policy/repo"
)

// Service defines the service contract for the content policy
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	norm   *textnorm.Normalizer
}

// New creates a new policy service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("policy.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("policy.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db, norm: textnorm.New()}
}

// Check rejects bodies containing any banned word. Matching is substring
// over the fold-normalized forms, so case, width, and zero-width tricks
// do not slip through.
func (s *Svc) Check(ctx context.Context, body string) error {
	norms, err := s.Repo.Norms(ctx)
	if err != nil {
		return perr.FromPostgres(err, "loading word list")
	}
	if len(norms) == 0 {
		return nil
	}
	folded := s.norm.Normalize(body)
	for _, w := range norms {
		if w == "" {
			continue
		}
		if strings.Contains(folded, w) {
			return perr.ContentPolicyf("contribution contains a banned word")
		}
	}
	return nil
}

// List returns the word list for the admin surface
func (s *Svc) List(ctx context.Context) ([]domain.BannedWord, error) {
	rows, err := s.Repo.List(ctx)
	if err != nil {
		return nil, perr.FromPostgres(err, "listing banned words")
	}
	out := make([]domain.BannedWord, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.BannedWord{ID: r.ID, Word: r.Word, CreatedAt: r.CreatedAt})
	}
	return out, nil
}

// Add inserts a word; duplicates surface as conflicts
func (s *Svc) Add(ctx context.Context, in domain.AddInput) (domain.BannedWord, error) {
	word := strings.TrimSpace(in.Word)
	if word == "" {
		return domain.BannedWord{}, perr.Newf(perr.ErrorCodeValidation, "word must not be blank")
	}
	folded := s.norm.Normalize(word)
	if folded == "" {
		return domain.BannedWord{}, perr.Newf(perr.ErrorCodeValidation, "word normalizes to nothing")
	}
	id := uuid.NewString()
	if err := s.Repo.Insert(ctx, id, word, folded); err != nil {
		return domain.BannedWord{}, perr.FromPostgresWithField(err, "adding banned word")
	}
	return domain.BannedWord{ID: id, Word: word}, nil
}

// Remove deletes a word by its raw or normalized form
func (s *Svc) Remove(ctx context.Context, in domain.RemoveInput) error {
	word := strings.TrimSpace(in.Word)
	if word == "" {
		return perr.Newf(perr.ErrorCodeValidation, "word must not be blank")
	}
	n, err := s.Repo.Delete(ctx, word)
	if err != nil {
		return perr.FromPostgres(err, "removing banned word")
	}
	if n == 0 {
		return perr.NotFoundf("word %q not on the list", word)
	}
	return nil
}
