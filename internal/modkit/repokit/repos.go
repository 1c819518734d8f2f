// Package repokit carries the shared surface repositories build on.
package repokit

import (
	"context"

	"prokontra/internal/platform/store"
)

// Queryer is the read/write surface a repo needs for plain SQL.
type Queryer = store.RowQuerier

// RowQuerier mirrors Queryer for callers that prefer the store name.
type RowQuerier = store.RowQuerier

// TxRunner runs a function inside a transaction.
type TxRunner = store.TxRunner

type (
	// Rows is a multi-row cursor.
	Rows = store.Rows

	// Row is a single scanned row.
	Row = store.Row

	// CommandTag reports the outcome of a mutating statement.
	CommandTag = store.CommandTag
)

// WithTx runs fn inside a transaction on tx.
func WithTx(ctx context.Context, tx TxRunner, fn func(q Queryer) error) error {
	return tx.Tx(ctx, fn)
}

// PG hands back a Postgres querier without pulling a driver into the caller.
func PG(_ context.Context, q store.RowQuerier) store.RowQuerier { return q }

// TX hands back a TxRunner the same way.
func TX(_ context.Context, tx store.TxRunner) store.TxRunner { return tx }
