package repokit

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

// recordingPinger captures the ctx it saw and returns a preset error
type recordingPinger struct {
	lastCtx context.Context
	err     error
}

func (p *recordingPinger) Ping(ctx context.Context) error {
	p.lastCtx = ctx
	return p.err
}

// stubGuard forces Guard to succeed or fail
type stubGuard struct{ err error }

func (g stubGuard) Guard(context.Context) error { return g.err }

func wantPanicContaining(t *testing.T, sub string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic containing %q, got none", sub)
		}
		var msg string
		switch x := r.(type) {
		case string:
			msg = x
		case error:
			msg = x.Error()
		}
		if !strings.Contains(msg, sub) {
			t.Fatalf("panic message %q does not contain %q", msg, sub)
		}
	}()
	fn()
}

func TestMustPing_PanicsOnNilDependency(t *testing.T) {
	t.Parallel()

	wantPanicContaining(t, "pg: nil dependency", func() {
		MustPing(context.Background(), "pg", nil)
	})
}

func TestMustPing_AppliesDefaultDeadline(t *testing.T) {
	t.Parallel()

	p := &recordingPinger{}
	start := time.Now()

	MustPing(context.Background(), "pg", p)

	if p.lastCtx == nil {
		t.Fatal("pinger never saw a context")
	}
	dl, ok := p.lastCtx.Deadline()
	if !ok {
		t.Fatal("expected MustPing to set a deadline")
	}
	if got := dl.Sub(start); got < 4*time.Second || got > 6*time.Second {
		t.Fatalf("default deadline not ~5s out: got %v", got)
	}
}

func TestMustPing_KeepsCallerDeadline(t *testing.T) {
	t.Parallel()

	p := &recordingPinger{}
	parent, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	MustPing(parent, "pg", p)

	dlWant, _ := parent.Deadline()
	dlGot, ok := p.lastCtx.Deadline()
	if !ok {
		t.Fatal("child context lost its deadline")
	}
	if diff := dlGot.Sub(dlWant); diff < -2*time.Millisecond || diff > 2*time.Millisecond {
		t.Fatalf("child deadline drifted from parent: got %v want %v", dlGot, dlWant)
	}
}

func TestMustPing_PanicsOnPingError(t *testing.T) {
	t.Parallel()

	p := &recordingPinger{err: errors.New("connection refused")}
	wantPanicContaining(t, "pg ping failed: connection refused", func() {
		MustPing(context.Background(), "pg", p)
	})
}

func TestMustGuard(t *testing.T) {
	t.Parallel()

	t.Run("panics on guard failure", func(t *testing.T) {
		wantPanicContaining(t, "dependency guard failed: pg: down", func() {
			MustGuard(context.Background(), stubGuard{err: errors.New("pg: down")})
		})
	})

	t.Run("healthy guard passes", func(t *testing.T) {
		MustGuard(context.Background(), stubGuard{})
	})
}
