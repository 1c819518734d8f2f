package main

import (
	"context"

	"prokontra/internal/modkit/repokit"
	"prokontra/internal/platform/config"
	"prokontra/internal/platform/logger"
	phttp "prokontra/internal/platform/net/http"
	"prokontra/internal/platform/store"

	"prokontra/internal/services/api"
	"prokontra/migrations"
)

func main() {
	// CORE_API_* scopes the http surface, SERVICE_PGSQL_* the store
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")
	pgCfg := root.Prefix("SERVICE_PGSQL_")

	l := logger.Get()

	st, err := store.Open(
		context.Background(),
		store.Config{
			PG: store.PGConfig{
				Enabled:     true,
				URL:         pgCfg.MustString("DBURL"),
				MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
				SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
				LogSQL:      pgCfg.MayBool("LOG_SQL", true),
			},
		},
		store.WithLogger(*logger.Get()),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// refuse to serve if postgres is not answering
	repokit.MustGuard(context.Background(), st)

	if pgCfg.MayBool("MIGRATE", true) {
		if err := store.ApplyMigrations(context.Background(), st.PG, migrations.FS); err != nil {
			l.Panic().Err(err).Msg("migrations failed")
		}
	}

	// listen address comes from CORE_API_PORT
	srv := phttp.NewServer(apiCfg)

	api.Mount(
		srv.Router(),
		api.Options{
			Config:        apiCfg,
			Store:         st,
			Logger:        l,
			SecureCookies: apiCfg.MayBool("SECURE_COOKIES", true),
		},
	)

	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
