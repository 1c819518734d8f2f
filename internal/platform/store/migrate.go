package store

import (
	"context"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

// ApplyMigrations runs every *.up.sql file in fsys, in lexical order, that
// has not been applied yet. Each file runs in its own transaction together
// with its bookkeeping row.
func ApplyMigrations(ctx context.Context, db TxRunner, fsys fs.FS) error {
	if db == nil {
		return fmt.Errorf("nil TxRunner")
	}
	if err := ensureMigrationsTable(ctx, db); err != nil {
		return err
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("read migrations: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".up.sql") {
			continue
		}
		files = append(files, e.Name())
	}
	sort.Strings(files)

	for _, name := range files {
		applied, err := isMigrated(ctx, db, name)
		if err != nil {
			return err
		}
		if applied {
			continue
		}

		contents, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}

		err = db.Tx(ctx, func(q RowQuerier) error {
			if _, err := q.Exec(ctx, string(contents)); err != nil {
				return fmt.Errorf("execute migration %s: %w", name, err)
			}
			if _, err := q.Exec(ctx, `insert into schema_migrations (version) values ($1)`, name); err != nil {
				return fmt.Errorf("record migration %s: %w", name, err)
			}
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func ensureMigrationsTable(ctx context.Context, db TxRunner) error {
	const sql = `
create table if not exists schema_migrations (
	version text primary key,
	applied_at timestamptz not null default now()
)`
	if _, err := db.Exec(ctx, sql); err != nil {
		return fmt.Errorf("ensure schema_migrations: %w", err)
	}
	return nil
}

func isMigrated(ctx context.Context, db TxRunner, version string) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx, `select exists(select 1 from schema_migrations where version = $1)`, version).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check migration %s: %w", version, err)
	}
	return exists, nil
}
