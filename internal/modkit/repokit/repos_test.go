package repokit

import (
	"context"
	"errors"
	"testing"

	"prokontra/internal/platform/store"
)

func TestPG_TX_AreIdentity(t *testing.T) {
	t.Parallel()

	q := &recordingQ{}
	if got := PG(context.Background(), q); got != store.RowQuerier(q) {
		t.Fatal("PG should hand back the same RowQuerier")
	}

	tx := &recordingRunner{q: q}
	if got := TX(context.Background(), tx); got != store.TxRunner(tx) {
		t.Fatal("TX should hand back the same TxRunner")
	}
}

func TestWithTx_SurfacesTxQueryer(t *testing.T) {
	t.Parallel()

	runner := &recordingRunner{q: &recordingQ{}}
	sawQ := false

	err := WithTx(context.Background(), runner, func(q Queryer) error {
		if q != runner.q {
			t.Fatal("fn got a Queryer outside the tx")
		}
		sawQ = true
		return nil
	})
	if err != nil {
		t.Fatalf("WithTx: %v", err)
	}
	if !sawQ {
		t.Fatal("fn never ran")
	}
	if runner.txs != 1 {
		t.Fatalf("Tx called %d times, want 1", runner.txs)
	}
}

func TestWithTx_ErrorPaths(t *testing.T) {
	t.Parallel()

	t.Run("fn error aborts", func(t *testing.T) {
		runner := &recordingRunner{q: &recordingQ{}}
		want := errors.New("vote already counted")
		err := WithTx(context.Background(), runner, func(q Queryer) error { return want })
		if !errors.Is(err, want) {
			t.Fatalf("WithTx error = %v, want %v", err, want)
		}
	})

	t.Run("runner error propagates", func(t *testing.T) {
		want := errors.New("commit failed")
		runner := &recordingRunner{q: &recordingQ{}, err: want}
		err := WithTx(context.Background(), runner, func(q Queryer) error { return nil })
		if !errors.Is(err, want) {
			t.Fatalf("WithTx error = %v, want %v", err, want)
		}
	})
}
