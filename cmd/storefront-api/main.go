// @title         Storefront API
// @version       0.1.0
// @description   Catalog, accounts, orders and sales stats
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"storefront/internal/platform/auth"
	"storefront/internal/platform/config"
	"storefront/internal/platform/logger"
	phttp "storefront/internal/platform/net/http"
	"storefront/internal/platform/store"
	"storefront/internal/platform/store/migrate"

	"storefront/internal/services/api"

	"golang.org/x/sync/errgroup"
)

func main() {
	logger.Init(logger.FromEnv())
	l := logger.Get()

	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// open the platform store (postgres, clickhouse when SERVICE_CLICKHOUSE_ENABLED)
	st, err := store.Open(ctx, store.ConfigFromEnv(root, "api", "http"), store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	if apiCfg.MayBool("MIGRATE", true) {
		applied, err := migrate.Postgres(ctx, st.PG)
		if err != nil {
			l.Panic().Err(err).Msg("postgres migrations failed")
		}
		l.Info().Strs("applied", applied).Msg("postgres migrations done")
		if st.CH != nil {
			if err := migrate.Clickhouse(ctx, st.CH); err != nil {
				l.Panic().Err(err).Msg("clickhouse migrations failed")
			}
		}
	}

	tokens, err := auth.New(auth.FromConfig(root))
	if err != nil {
		l.Panic().Err(err).Msg("auth setup failed")
	}

	// http server (reads CORE_API_PORT etc)
	srv := phttp.NewServer(apiCfg)

	workers := api.Mount(
		srv.Router(),
		api.Options{
			Config:         root,
			Store:          st,
			Tokens:         tokens,
			Logger:         l,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
		},
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Run(gctx) })
	for _, w := range workers {
		g.Go(func() error { return w.Run(gctx) })
	}

	if err := g.Wait(); err != nil && ctx.Err() == nil {
		l.Panic().Err(err).Msg("storefront-api stopped")
	}
	l.Info().Msg("storefront-api stopped")
}
