// Package repo provides postgres access for admin statistics
package repo

import (
	"context"

	"prokontra/internal/modkit/repokit"
)

// Repo defines the repository contract for admin
type Repo interface {
	Stats(ctx context.Context) (RowStats, error)
}

// RowStats carries the raw counters behind the stats endpoint
type RowStats struct {
	Topics  int64
	Reasons int64
	Votes   int64
	Actors  int64
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

func (r *queries) Stats(ctx context.Context) (RowStats, error) {
	const sql = `
select
  (select count(*) from topics),
  (select count(*) from reasons where deleted_at is null),
  (select count(*) from reason_votes),
  (select count(*) from (
     select coalesce(account_id::text, anon_key) as actor
     from reasons where deleted_at is null
     union
     select coalesce(account_id::text, anon_key)
     from reason_votes
  ) actors)
`
	var s RowStats
	if err := r.q.QueryRow(ctx, sql).Scan(&s.Topics, &s.Reasons, &s.Votes, &s.Actors); err != nil {
		return RowStats{}, err
	}
	return s, nil
}
