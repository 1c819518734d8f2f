package testkit

import (
	"sync"
	"testing"
	"time"
)

var (
	scoreFn    = func(up, down int) int { return up - down }
	seamWindow = 30
)

func TestSwap_RestoresFunctionSeam(t *testing.T) {
	// swap inside a subtest so Cleanup fires before the restore check
	t.Run("swapped", func(t *testing.T) {
		if got := scoreFn(5, 2); got != 3 {
			t.Fatalf("precondition failed, scoreFn(5,2)=%d want 3", got)
		}
		Swap(t, &scoreFn, func(up, down int) int { return 0 })
		if got := scoreFn(5, 2); got != 0 {
			t.Fatalf("swap did not take effect, got %d want 0", got)
		}
	})

	if got := scoreFn(5, 2); got != 3 {
		t.Fatalf("swap did not restore original, got %d want 3", got)
	}
}

func TestSwap_RestoresValueSeam(t *testing.T) {
	t.Parallel()

	t.Run("swapped", func(t *testing.T) {
		if seamWindow != 30 {
			t.Fatalf("precondition failed, got %d", seamWindow)
		}
		Swap(t, &seamWindow, 90)
		if seamWindow != 90 {
			t.Fatalf("swap failed, got %d want 90", seamWindow)
		}
	})
	if seamWindow != 30 {
		t.Fatalf("swap did not restore original, got %d want 30", seamWindow)
	}
}

func TestSerial_GroupsParallelSubtests(t *testing.T) {
	t.Parallel()

	var seqMu sync.Mutex
	var seq []string

	record := func(s string) {
		seqMu.Lock()
		seq = append(seq, s)
		seqMu.Unlock()
	}

	runSerial := func(name string) func(*testing.T) {
		return func(t *testing.T) {
			t.Parallel()
			Serial(t)
			record(name + "-start")
			time.Sleep(50 * time.Millisecond)
			record(name + "-end")
		}
	}
	t.Run("A", runSerial("A"))
	t.Run("B", runSerial("B"))

	t.Cleanup(func() {
		// one subtest must finish entirely before the other starts
		seqMu.Lock()
		defer seqMu.Unlock()
		if len(seq) != 4 {
			t.Fatalf("unexpected sequence length %d, seq=%v", len(seq), seq)
		}
		first := seq[0]
		wantPrefix := first[:1]
		if seq[1] != wantPrefix+"-end" {
			t.Fatalf("expected %s to finish before the other started, seq=%v", wantPrefix, seq)
		}
	})
}
