package repokit

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"prokontra/internal/platform/store"
)

// recordingQ counts calls and keeps the last statement it saw. Shared by
// the hook and WithTx tests in this package
type recordingQ struct {
	execs, queries, rows int

	lastSQL  string
	lastArgs []any
}

func (r *recordingQ) note(sql string, args []any) {
	r.lastSQL = sql
	r.lastArgs = append([]any(nil), args...)
}

func (r *recordingQ) Exec(ctx context.Context, sql string, args ...any) (store.CommandTag, error) {
	r.execs++
	r.note(sql, args)
	var zero store.CommandTag
	return zero, nil
}

func (r *recordingQ) Query(ctx context.Context, sql string, args ...any) (store.Rows, error) {
	r.queries++
	r.note(sql, args)
	var zero store.Rows
	return zero, nil
}

func (r *recordingQ) QueryRow(ctx context.Context, sql string, args ...any) store.Row {
	r.rows++
	r.note(sql, args)
	var zero store.Row
	return zero
}

// recordingRunner hands its recordingQ to every Tx callback
type recordingRunner struct {
	q   *recordingQ
	txs int
	err error
}

func (r *recordingRunner) Tx(ctx context.Context, fn func(q Queryer) error) error {
	r.txs++
	if fn != nil {
		if err := fn(r.q); err != nil {
			return err
		}
	}
	return r.err
}

func (r *recordingRunner) Exec(ctx context.Context, sql string, args ...any) (store.CommandTag, error) {
	return r.q.Exec(ctx, sql, args...)
}

func (r *recordingRunner) Query(ctx context.Context, sql string, args ...any) (store.Rows, error) {
	return r.q.Query(ctx, sql, args...)
}

func (r *recordingRunner) QueryRow(ctx context.Context, sql string, args ...any) store.Row {
	return r.q.QueryRow(ctx, sql, args...)
}

func TestWithBeginHooks_RunInOrderBeforeFn(t *testing.T) {
	t.Parallel()

	inner := &recordingRunner{q: &recordingQ{}}
	var seq []string

	timeoutHook := func(ctx context.Context, q Queryer) error {
		if q != inner.q {
			t.Fatal("hook got a different Queryer than the tx")
		}
		seq = append(seq, "timeout")
		return nil
	}
	roleHook := func(ctx context.Context, q Queryer) error {
		seq = append(seq, "role")
		return nil
	}

	runner := WithBeginHooks(inner, timeoutHook, roleHook)
	err := runner.Tx(context.Background(), func(q Queryer) error {
		seq = append(seq, "body")
		return nil
	})
	if err != nil {
		t.Fatalf("Tx: %v", err)
	}
	if want := []string{"timeout", "role", "body"}; !reflect.DeepEqual(seq, want) {
		t.Fatalf("run order = %v, want %v", seq, want)
	}
	if inner.txs != 1 {
		t.Fatalf("inner Tx called %d times, want 1", inner.txs)
	}
}

func TestWithBeginHooks_FailedHookAbortsTx(t *testing.T) {
	t.Parallel()

	inner := &recordingRunner{q: &recordingQ{}}
	hookErr := errors.New("set statement_timeout: permission denied")

	first := func(ctx context.Context, q Queryer) error { return hookErr }
	second := func(ctx context.Context, q Queryer) error {
		t.Fatal("later hook ran after an earlier one failed")
		return nil
	}

	bodyRan := false
	err := WithBeginHooks(inner, first, second).Tx(context.Background(), func(q Queryer) error {
		bodyRan = true
		return nil
	})

	if !errors.Is(err, hookErr) {
		t.Fatalf("Tx error = %v, want hook error", err)
	}
	if bodyRan {
		t.Fatal("tx body ran after hook failure")
	}
}

func TestWithBeginHooks_NonTxCallsPassThrough(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	inner := &recordingRunner{q: &recordingQ{}}
	runner := WithBeginHooks(inner)

	if _, err := runner.Exec(ctx, "update reasons set score = $1 where id = $2", 42, "r1"); err != nil {
		t.Fatalf("Exec: %v", err)
	}
	if _, err := runner.Query(ctx, "select id from reasons where topic_id = $1", "t1"); err != nil {
		t.Fatalf("Query: %v", err)
	}
	_ = runner.QueryRow(ctx, "select slug from topics where id = $1", "t1")

	if inner.q.execs != 1 || inner.q.queries != 1 || inner.q.rows != 1 {
		t.Fatalf("delegation counts = %d/%d/%d, want 1/1/1", inner.q.execs, inner.q.queries, inner.q.rows)
	}
	if inner.q.lastSQL != "select slug from topics where id = $1" {
		t.Fatalf("last SQL = %q", inner.q.lastSQL)
	}
	if !reflect.DeepEqual(inner.q.lastArgs, []any{"t1"}) {
		t.Fatalf("last args = %v", inner.q.lastArgs)
	}
}
