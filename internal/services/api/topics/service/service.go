// Package service contains topic resolution workflows
package service

import (
	"context"
	"time"

	"prokontra/internal/modkit/repokit"
	perr "prokontra/internal/platform/errors"
	"prokontra/internal/services/api/topics/domain"
	"prokontra/internal/services/api/topics/repo"
)

// Service defines the service contract for topics
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	now    func() time.Time
}

// New creates a new topics service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("topics.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("topics.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db, now: time.Now}
}

// Resolve returns the topic named by slug, or the newest live topic when
// slug is empty
func (s *Svc) Resolve(ctx context.Context, slug string) (domain.Topic, error) {
	if slug == "" {
		return s.Active(ctx)
	}
	row, err := s.Repo.BySlug(ctx, slug)
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeNotFound) {
			return domain.Topic{}, perr.NotFoundf("topic %q not found", slug)
		}
		return domain.Topic{}, err
	}
	return toTopic(row), nil
}

// Active returns the newest live topic
func (s *Svc) Active(ctx context.Context) (domain.Topic, error) {
	row, err := s.Repo.NewestLive(ctx, s.now().UTC())
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeNotFound) {
			return domain.Topic{}, perr.NotFoundf("no live topic")
		}
		return domain.Topic{}, err
	}
	return toTopic(row), nil
}

func toTopic(r repo.RowTopic) domain.Topic {
	return domain.Topic{
		ID:        r.ID,
		Slug:      r.Slug,
		Title:     r.Title,
		IsActive:  r.IsActive,
		StartsAt:  r.StartsAt,
		EndsAt:    r.EndsAt,
		CreatedAt: r.CreatedAt,
	}
}
