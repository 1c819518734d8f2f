// Package repo provides postgres access for accounts
package repo

import (
	"context"

	"prokontra/internal/modkit/repokit"
)

// Repo defines the repository contract for accounts
type Repo interface {
	Ensure(ctx context.Context, id, role string) error
	Role(ctx context.Context, id string) (string, error)
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

func (r *queries) Ensure(ctx context.Context, id, role string) error {
	const sql = `
insert into accounts (id, role)
values ($1, $2)
on conflict (id) do nothing
`
	_, err := r.q.Exec(ctx, sql, id, role)
	return err
}

func (r *queries) Role(ctx context.Context, id string) (string, error) {
	const sql = `select role from accounts where id = $1`
	var role string
	if err := r.q.QueryRow(ctx, sql, id).Scan(&role); err != nil {
		return "", err
	}
	return role, nil
}
