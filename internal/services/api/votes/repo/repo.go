// Package repo provides postgres access for reason votes
package repo

import (
	"context"

	"prokontra/internal/modkit/repokit"
)

// Repo defines the repository contract for votes
type Repo interface {
	ReasonExists(ctx context.Context, reasonID string) (bool, error)
	UpsertAccount(ctx context.Context, id, reasonID, accountID string, value int) error
	UpsertAnon(ctx context.Context, id, reasonID, anonKey string, value int) error
	DeleteAnon(ctx context.Context, reasonID, anonKey string) error
	ScoresFor(ctx context.Context, reasonIDs []string) ([]RowScore, error)
	VotesOf(ctx context.Context, accountID, anonKey string, reasonIDs []string) ([]RowVote, error)
}

// RowScore is one reason's aggregate
type RowScore struct {
	ReasonID string
	Score    int
	Up       int
	Neutral  int
	Down     int
}

// RowVote is one of the caller's own votes
type RowVote struct {
	ReasonID  string
	Value     int
	IsAccount bool
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

func (r *queries) ReasonExists(ctx context.Context, reasonID string) (bool, error) {
	const sql = `select exists(select 1 from reasons where id::text = $1 and deleted_at is null)`
	var ok bool
	if err := r.q.QueryRow(ctx, sql, reasonID).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}

func (r *queries) UpsertAccount(ctx context.Context, id, reasonID, accountID string, value int) error {
	const sql = `
insert into reason_votes (id, reason_id, account_id, value)
values ($1, $2, $3, $4)
on conflict (reason_id, account_id) where account_id is not null
do update set value = excluded.value, updated_at = now()
`
	_, err := r.q.Exec(ctx, sql, id, reasonID, accountID, value)
	return err
}

func (r *queries) UpsertAnon(ctx context.Context, id, reasonID, anonKey string, value int) error {
	const sql = `
insert into reason_votes (id, reason_id, anon_key, value)
values ($1, $2, $3, $4)
on conflict (reason_id, anon_key) where account_id is null
do update set value = excluded.value, updated_at = now()
`
	_, err := r.q.Exec(ctx, sql, id, reasonID, anonKey, value)
	return err
}

func (r *queries) DeleteAnon(ctx context.Context, reasonID, anonKey string) error {
	const sql = `delete from reason_votes where reason_id::text = $1 and anon_key = $2 and account_id is null`
	_, err := r.q.Exec(ctx, sql, reasonID, anonKey)
	return err
}

func (r *queries) ScoresFor(ctx context.Context, reasonIDs []string) ([]RowScore, error) {
	if len(reasonIDs) == 0 {
		return nil, nil
	}
	const sql = `
select v.reason_id::text,
       coalesce(sum(v.value), 0)::int as score,
       count(*) filter (where v.value = 1)::int as up,
       count(*) filter (where v.value = 0)::int as neutral,
       count(*) filter (where v.value = -1)::int as down
from reason_votes v
join reasons r on r.id = v.reason_id and r.deleted_at is null
where v.reason_id::text = any($1)
group by v.reason_id
`
	rows, err := r.q.Query(ctx, sql, reasonIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []RowScore
	for rows.Next() {
		var s RowScore
		if err := rows.Scan(&s.ReasonID, &s.Score, &s.Up, &s.Neutral, &s.Down); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *queries) VotesOf(ctx context.Context, accountID, anonKey string, reasonIDs []string) ([]RowVote, error) {
	if len(reasonIDs) == 0 || (accountID == "" && anonKey == "") {
		return nil, nil
	}
	const sql = `
select reason_id::text, value, account_id is not null as is_account
from reason_votes
where reason_id::text = any($3)
and (($1 <> '' and account_id::text = $1)
  or ($2 <> '' and account_id is null and anon_key = $2))
`
	rows, err := r.q.Query(ctx, sql, accountID, anonKey, reasonIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []RowVote
	for rows.Next() {
		var v RowVote
		if err := rows.Scan(&v.ReasonID, &v.Value, &v.IsAccount); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
