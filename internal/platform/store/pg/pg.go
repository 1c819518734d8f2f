// Package pg wraps pgxpool with slow-query tracing for the contribution store
package pg

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Config carries the pool settings read from the environment
type Config struct {
	URL      string
	MaxConns int32
	SlowMs   int
}

// PG owns the pgx pool plus the tracer that logs slow statements
type PG struct {
	Pool   *pgxpool.Pool
	Tracer QueryTracer
	SlowMs int
}

var newPool = pgxpool.NewWithConfig

// Open parses cfg.URL, applies MaxConns and the optional pool mutator, and
// connects through the newPool seam
func Open(ctx context.Context, cfg Config, tracer QueryTracer, poolCfgMut func(*pgxpool.Config)) (*PG, error) {
	pcfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, err
	}
	if cfg.MaxConns > 0 {
		pcfg.MaxConns = cfg.MaxConns
	}
	if poolCfgMut != nil {
		poolCfgMut(pcfg)
	}
	pool, err := newPool(ctx, pcfg)
	if err != nil {
		return nil, err
	}
	return &PG{
		Pool:   pool,
		Tracer: tracer,
		SlowMs: cfg.SlowMs,
	}, nil
}

// Close releases the pool. Safe on a nil receiver
func (p *PG) Close() {
	if p != nil && p.Pool != nil {
		p.Pool.Close()
	}
}
