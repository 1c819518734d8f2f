package pg

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/rs/zerolog"
)

func TestCompact(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"select 1", "select 1"},
		{"  select   1  ", " select 1 "},
		{"SELECT\t*\nFROM\r\treasons WHERE  topic_id =  $1", "SELECT * FROM reasons WHERE topic_id = $1"},
		{"\n\nupdate\n\ttopics  set\r\nstate = $1", " update topics set state = $1"},
		{"", ""},
	}
	for i, c := range cases {
		if got := compact(c.in); got != c.want {
			t.Fatalf("case %d: compact(%q) = %q, want %q", i, c.in, got, c.want)
		}
	}
}

type tracerLine struct {
	Level     string  `json:"level"`
	ElapsedMS float64 `json:"elapsed_ms"`
	Slow      bool    `json:"slow"`
	SQL       string  `json:"sql"`
	Args      any     `json:"args"`
	Error     string  `json:"error"`
	Message   string  `json:"message"`
	Component string  `json:"component,omitempty"`
}

// trace runs one event through a fresh tracer and decodes the log line
func trace(t *testing.T, ev QueryEvent) tracerLine {
	t.Helper()
	var buf bytes.Buffer
	Tracer(zerolog.New(&buf)).OnQuery(context.Background(), ev)

	var line tracerLine
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line); err != nil {
		t.Fatalf("unmarshal log line: %v\nraw=%s", err, buf.String())
	}
	return line
}

func TestTracer_FastQueryLogsInfo(t *testing.T) {
	t.Parallel()

	ev := QueryEvent{
		SQL:       "SELECT  * \n FROM  reasons\tWHERE topic_id = $1",
		Args:      []any{7, "pro"},
		ElapsedUS: 12345,
		Err:       errors.New("boom"),
	}
	line := trace(t, ev)

	if line.Level != "info" || line.Slow {
		t.Fatalf("fast query logged level=%q slow=%v", line.Level, line.Slow)
	}
	if line.SQL != "SELECT * FROM reasons WHERE topic_id = $1" {
		t.Errorf("sql not compacted: %q", line.SQL)
	}
	if math.Abs(line.ElapsedMS-12.345) > 0.0005 {
		t.Errorf("elapsed_ms = %v, want 12.345", line.ElapsedMS)
	}
	if arr, ok := line.Args.([]any); !ok || len(arr) != 2 || arr[0].(float64) != 7 || arr[1].(string) != "pro" {
		t.Errorf("args = %#v", line.Args)
	}
	if line.Error != "boom" || line.Message != "pg query" || line.Component != "pg" {
		t.Errorf("line fields: %+v", line)
	}
}

func TestTracer_SlowQueryLogsWarn(t *testing.T) {
	t.Parallel()

	line := trace(t, QueryEvent{
		SQL:       "select count(*) from reason_votes where reason_id = $1",
		ElapsedUS: 250000,
		Slow:      true,
	})
	if line.Level != "warn" || !line.Slow {
		t.Fatalf("slow query logged level=%q slow=%v", line.Level, line.Slow)
	}
	if math.Abs(line.ElapsedMS-250) > 0.0005 {
		t.Errorf("elapsed_ms = %v, want 250", line.ElapsedMS)
	}
}
