// Package repo provides postgres access for topics
package repo

import (
	"context"
	"time"

	"prokontra/internal/modkit/repokit"
	"prokontra/internal/platform/store"
)

// Repo defines the repository contract for topics
type Repo interface {
	BySlug(ctx context.Context, slug string) (RowTopic, error)
	NewestLive(ctx context.Context, now time.Time) (RowTopic, error)
}

// RowTopic represents a topic row from the database
type RowTopic struct {
	ID        string
	Slug      string
	Title     string
	IsActive  bool
	StartsAt  *time.Time
	EndsAt    *time.Time
	CreatedAt time.Time
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func scanTopic(r store.Row) (RowTopic, error) {
	var t RowTopic
	err := r.Scan(&t.ID, &t.Slug, &t.Title, &t.IsActive, &t.StartsAt, &t.EndsAt, &t.CreatedAt)
	return t, err
}

func (r *queries) BySlug(ctx context.Context, slug string) (RowTopic, error) {
	const sql = `
select id::text, slug, title, is_active, starts_at, ends_at, created_at
from topics
where slug = $1
`
	return store.One(ctx, r.q, scanTopic, sql, slug)
}

func (r *queries) NewestLive(ctx context.Context, now time.Time) (RowTopic, error) {
	const sql = `
select id::text, slug, title, is_active, starts_at, ends_at, created_at
from topics
where is_active
and (starts_at is null or starts_at <= $1)
and (ends_at is null or ends_at >= $1)
order by created_at desc
limit 1
`
	return store.One(ctx, r.q, scanTopic, sql, now)
}
