// Package repo provides postgres access for the banned word list
package repo

import (
	"context"
	"time"

	"prokontra/internal/modkit/repokit"
)

// Repo defines the repository contract for banned words
type Repo interface {
	List(ctx context.Context) ([]RowWord, error)
	Norms(ctx context.Context) ([]string, error)
	Insert(ctx context.Context, id, word, norm string) error
	Delete(ctx context.Context, word string) (int64, error)
}

// RowWord represents a banned word row from the database
type RowWord struct {
	ID        string
	Word      string
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

func (r *queries) List(ctx context.Context) ([]RowWord, error) {
	const sql = `select id::text, word, created_at from banned_words order by word`
	rows, err := r.q.Query(ctx, sql)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []RowWord
	for rows.Next() {
		var w RowWord
		if err := rows.Scan(&w.ID, &w.Word, &w.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

func (r *queries) Norms(ctx context.Context) ([]string, error) {
	const sql = `select word_norm from banned_words`
	rows, err := r.q.Query(ctx, sql)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *queries) Insert(ctx context.Context, id, word, norm string) error {
	const sql = `insert into banned_words (id, word, word_norm) values ($1, $2, $3)`
	_, err := r.q.Exec(ctx, sql, id, word, norm)
	return err
}

func (r *queries) Delete(ctx context.Context, word string) (int64, error) {
	const sql = `delete from banned_words where word = $1 or word_norm = $1`
	tag, err := r.q.Exec(ctx, sql, word)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
