package store

import (
	"context"
	"fmt"
	"time"

	"prokontra/internal/platform/store/pg"
)

// openPG opens the pool, waits for it to come up, then publishes the
// traced sql adapter on the store
func openPG(ctx context.Context, cfg Config, s *Store) (TxRunner, error) {
	var tracer pg.QueryTracer
	if cfg.PG.LogSQL {
		tracer = pg.Tracer(s.Log)
	}

	p, err := pg.Open(ctx, pg.Config{
		URL:      cfg.PG.URL,
		MaxConns: cfg.PG.MaxConns,
		SlowMs:   cfg.PG.SlowQueryMs,
	}, tracer, nil)
	if err != nil {
		return nil, err
	}

	retries := cfg.PG.ConnectRetries
	if retries <= 0 {
		retries = 6
	}
	pingTimeout := cfg.PG.PingTimeout
	if pingTimeout <= 0 {
		pingTimeout = 5 * time.Second
	}

	// ping the raw pool so boot retries never show up as traced SQL
	const backoffCeiling = 2 * time.Second
	backoff := 150 * time.Millisecond

	var lastErr error
	for attempt := 0; attempt <= retries; attempt++ {
		toCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		lastErr = p.Pool.Ping(toCtx)
		cancel()

		if lastErr == nil {
			// publish the adapter only once the pool answers
			a := newPGAdapter(p)
			s.PG = a
			return a, nil
		}
		if ctx.Err() != nil {
			p.Close()
			return nil, ctx.Err()
		}

		time.Sleep(backoff)
		if backoff *= 2; backoff > backoffCeiling {
			backoff = backoffCeiling
		}
	}

	p.Close()
	return nil, fmt.Errorf("postgres unreachable after %d attempts: %w", retries+1, lastErr)
}
