// Package repo provides postgres access for reasons
package repo

import (
	"context"
	"time"

	"prokontra/internal/modkit/repokit"
	"prokontra/internal/platform/store"
)

// Repo defines the repository contract for reasons
type Repo interface {
	Insert(ctx context.Context, row RowReason) error
	ByID(ctx context.Context, id string) (RowReason, error)
	ListByTopic(ctx context.Context, topicID string) ([]RowReason, error)
	HasActiveRoot(ctx context.Context, topicID, accountID, anonKey string) (bool, error)
	SetDeleted(ctx context.Context, id string, deleted bool) (int64, error)
	SetFeatured(ctx context.Context, id string, featured bool) (int64, error)
}

// RowReason represents a reason row from the database
type RowReason struct {
	ID         string
	TopicID    string
	Side       string
	Body       string
	AnonKey    string
	AccountID  *string
	ParentID   *string
	IsFeatured bool
	DeletedAt  *time.Time
	CreatedAt  time.Time
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

func scanReason(r store.Row) (RowReason, error) {
	var row RowReason
	err := r.Scan(
		&row.ID,
		&row.TopicID,
		&row.Side,
		&row.Body,
		&row.AnonKey,
		&row.AccountID,
		&row.ParentID,
		&row.IsFeatured,
		&row.DeletedAt,
		&row.CreatedAt,
	)
	return row, err
}

const reasonCols = `
id::text, topic_id::text, side, body, anon_key,
account_id::text, parent_id::text, is_featured, deleted_at, created_at`

func (r *queries) Insert(ctx context.Context, row RowReason) error {
	const sql = `
insert into reasons (id, topic_id, side, body, anon_key, account_id, parent_id)
values ($1, $2, $3, $4, $5, $6, $7)
`
	_, err := r.q.Exec(ctx, sql,
		row.ID, row.TopicID, row.Side, row.Body, row.AnonKey, row.AccountID, row.ParentID)
	return err
}

func (r *queries) ByID(ctx context.Context, id string) (RowReason, error) {
	sql := `select ` + reasonCols + ` from reasons where id::text = $1`
	return store.One(ctx, r.q, scanReason, sql, id)
}

func (r *queries) ListByTopic(ctx context.Context, topicID string) ([]RowReason, error) {
	sql := `select ` + reasonCols + `
from reasons
where topic_id::text = $1 and deleted_at is null
order by created_at asc`
	return store.Many(ctx, r.q, scanReason, sql, topicID)
}

// HasActiveRoot covers both halves of a dual identity in one probe so a
// pre-claim account cannot double post through its anonymous token
func (r *queries) HasActiveRoot(ctx context.Context, topicID, accountID, anonKey string) (bool, error) {
	const sql = `
select exists(
	select 1 from reasons
	where topic_id::text = $1
	and parent_id is null
	and deleted_at is null
	and (($2 <> '' and account_id::text = $2) or ($3 <> '' and anon_key = $3))
)`
	var ok bool
	if err := r.q.QueryRow(ctx, sql, topicID, accountID, anonKey).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}

func (r *queries) SetDeleted(ctx context.Context, id string, deleted bool) (int64, error) {
	const sql = `
update reasons
set deleted_at = case when $2 then coalesce(deleted_at, now()) else null end
where id::text = $1
`
	tag, err := r.q.Exec(ctx, sql, id, deleted)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *queries) SetFeatured(ctx context.Context, id string, featured bool) (int64, error) {
	const sql = `update reasons set is_featured = $2 where id::text = $1 and deleted_at is null`
	tag, err := r.q.Exec(ctx, sql, id, featured)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
