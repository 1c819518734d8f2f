// Package repo provides postgres access for claiming anonymous contributions
package repo

import (
	"context"

	"prokontra/internal/modkit/repokit"
)

// Repo defines the repository contract for claims
type Repo interface {
	MoveReasons(ctx context.Context, anonKey, accountID string) (int64, error)
	MergeVotes(ctx context.Context, anonKey, accountID string) (int64, error)
	DeleteAnonVotes(ctx context.Context, anonKey string) (int64, error)
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

func (r *queries) MoveReasons(ctx context.Context, anonKey, accountID string) (int64, error) {
	const sql = `
update reasons
set account_id = $2
where anon_key = $1 and account_id is null and deleted_at is null
`
	tag, err := r.q.Exec(ctx, sql, anonKey, accountID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// MergeVotes copies the anonymous votes onto the account. Where the account
// already voted on the same reason the anonymous value wins, it is the more
// recent signal from the same person.
func (r *queries) MergeVotes(ctx context.Context, anonKey, accountID string) (int64, error) {
	const sql = `
insert into reason_votes (id, reason_id, account_id, value)
select gen_random_uuid(), reason_id, $2, value
from reason_votes
where anon_key = $1 and account_id is null
on conflict (reason_id, account_id) where account_id is not null
do update set value = excluded.value, updated_at = now()
`
	tag, err := r.q.Exec(ctx, sql, anonKey, accountID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *queries) DeleteAnonVotes(ctx context.Context, anonKey string) (int64, error) {
	const sql = `delete from reason_votes where anon_key = $1 and account_id is null`
	tag, err := r.q.Exec(ctx, sql, anonKey)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
