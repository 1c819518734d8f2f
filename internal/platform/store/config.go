package store

import "time"

// Config is everything Open needs, grouped per backend
type Config struct {
	AppName string

	PG PGConfig
}

// PGConfig covers connectivity, boot retries, and SQL tracing
type PGConfig struct {
	Enabled     bool
	URL         string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int

	// boot knobs; zero values fall back to 6 retries and a 5s ping
	ConnectRetries int
	PingTimeout    time.Duration
}
