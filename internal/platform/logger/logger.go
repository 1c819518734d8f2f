// Package logger wraps zerolog behind a process-wide root with
// request-scoped children. Everything else in the service logs through it
package logger

import (
	"context"
	"io"
	"os"
	"runtime/debug"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"prokontra/internal/platform/config/raw"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// Logger is the project logging type. An alias so call sites never name
// zerolog directly
type Logger = zerolog.Logger

// Options is everything Init needs to build the root logger
type Options struct {
	Level        string
	Format       string
	Service      string
	Component    string
	Writer       io.Writer
	WithCaller   bool
	SampleEvery  int
	StaticFields map[string]string
}

// FromEnv reads LOG_* through the raw config view. raw must stay
// import-free of this package or bootstrap would cycle
func FromEnv() Options {
	lc := raw.New().Prefix("LOG_")
	return Options{
		Level:       strings.ToLower(lc.Get("LEVEL", "debug")),
		Format:      strings.ToLower(lc.Get("FORMAT", "console")),
		Service:     lc.Get("SERVICE", ""),
		Component:   lc.Get("COMPONENT", ""),
		WithCaller:  lc.GetBool("CALLER", false),
		SampleEvery: lc.GetInt("SAMPLE_EVERY", 0),
	}
}

var (
	initOnce sync.Once
	rootLog  atomic.Pointer[zerolog.Logger]
	ready    atomic.Bool
)

var levelNames = map[string]zerolog.Level{
	"trace":   zerolog.TraceLevel,
	"debug":   zerolog.DebugLevel,
	"info":    zerolog.InfoLevel,
	"warn":    zerolog.WarnLevel,
	"warning": zerolog.WarnLevel,
	"error":   zerolog.ErrorLevel,
	"fatal":   zerolog.FatalLevel,
	"panic":   zerolog.PanicLevel,
}

// parseLevel maps a level name to zerolog, defaulting to debug
func parseLevel(s string) zerolog.Level {
	if lvl, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return lvl
	}
	return zerolog.DebugLevel
}

// Init builds the root logger exactly once. Later calls are no-ops, so
// main should call it before anything logs
func Init(opt Options) {
	initOnce.Do(func() {
		zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
		zerolog.TimeFieldFormat = time.RFC3339Nano

		log := build(opt)
		rootLog.Store(&log)
		ready.Store(true)
	})
}

func build(opt Options) zerolog.Logger {
	var w io.Writer = os.Stdout
	if opt.Writer != nil {
		w = opt.Writer
	}
	if opt.Format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	ctx := zerolog.New(w).Level(parseLevel(opt.Level)).With().Timestamp()

	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		ctx = ctx.Str("go_version", bi.GoVersion)
	}
	if opt.Service != "" {
		ctx = ctx.Str("service", opt.Service)
	}
	if opt.Component != "" {
		ctx = ctx.Str("component", opt.Component)
	}
	for k, v := range opt.StaticFields {
		ctx = ctx.Str(k, v)
	}

	log := ctx.Logger()
	if opt.WithCaller {
		log = log.With().Caller().Logger()
	}
	if opt.SampleEvery > 1 {
		log = log.Sample(&zerolog.BasicSampler{N: uint32(opt.SampleEvery)})
	}
	return log
}

// Get returns the root logger, initializing from env on first use
func Get() *Logger {
	if !ready.Load() {
		Init(FromEnv())
	}
	return rootLog.Load()
}

// Named returns a child tagged with a component field
func Named(component string) *Logger {
	if component == "" {
		return Get()
	}
	ll := Get().With().Str("component", component).Logger()
	return &ll
}

type ctxKey struct{ name string }

var (
	keyRequestID = ctxKey{"req_id"}
	keyActorID   = ctxKey{"actor_id"}
)

// WithRequest stashes request id and acting identity on ctx so C can
// pick them up anywhere downstream
func WithRequest(ctx context.Context, reqID, actorID string) context.Context {
	if reqID != "" {
		ctx = context.WithValue(ctx, keyRequestID, reqID)
	}
	if actorID != "" {
		ctx = context.WithValue(ctx, keyActorID, actorID)
	}
	return ctx
}

// C returns a child logger carrying whatever request fields ctx holds
func C(ctx context.Context) *Logger {
	builder := Get().With()
	if s, ok := ctx.Value(keyRequestID).(string); ok && s != "" {
		builder = builder.Str("request_id", s)
	}
	if s, ok := ctx.Value(keyActorID).(string); ok && s != "" {
		builder = builder.Str("actor_id", s)
	}
	ll := builder.Logger()
	return &ll
}
