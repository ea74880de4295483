// Package api provides the HTTP API for the storefront
package api

import (
	"context"
	"net/http"
	"time"

	"storefront/internal/platform/auth"
	"storefront/internal/platform/config"
	"storefront/internal/platform/logger"
	phttp "storefront/internal/platform/net/http"
	"storefront/internal/platform/net/middleware"
	"storefront/internal/platform/store"

	"storefront/internal/modkit"
	"storefront/internal/modkit/httpkit"
	"storefront/internal/modkit/module"
	"storefront/internal/modkit/swaggerkit"

	authmod "storefront/internal/services/api/auth/module"
	catmod "storefront/internal/services/api/categories/module"
	metamod "storefront/internal/services/api/meta/module"
	ordersmod "storefront/internal/services/api/orders/module"
	productsmod "storefront/internal/services/api/products/module"
	statsmod "storefront/internal/services/api/stats/module"
	usersmod "storefront/internal/services/api/users/module"
)

// Options are the API options
type Options struct {
	// Config is the root config; the API reads CORE_API_* and modules their own prefixes
	Config         config.Conf
	Store          *store.Store
	Tokens         *auth.Tokens
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Worker is a background loop started next to the http server
type Worker interface {
	Run(ctx context.Context) error
}

// Deps turns opened platform pieces into module deps
func Deps(cfg config.Conf, st *store.Store, tokens *auth.Tokens, l *logger.Logger) modkit.Deps {
	d := modkit.Deps{Cfg: cfg, Tokens: tokens}
	if l != nil {
		d.Log = *l
	}
	if st != nil {
		// keep interface values nil when a backend is disabled
		if st.PG != nil {
			d.PG = st.PG
		}
		if st.CH != nil {
			d.CH = st.CH
		}
	}
	return d
}

// Modules builds every API module in dependency order and registers their ports
func Modules(deps modkit.Deps) []module.Module {
	users := usersmod.New(deps)
	categories := catmod.New(deps)

	mods := []module.Module{
		metamod.New(deps),
		users,
		authmod.New(deps, modkit.WithPorts(authmod.Ports{
			Users: module.MustPortsOf[usersmod.Ports](users).Authenticator,
		})),
		categories,
		productsmod.New(deps),
		ordersmod.New(deps, ordersmod.FromConfig(deps.Cfg)),
		statsmod.New(deps),
	}
	for _, m := range mods {
		// register each module's ports under its own name for cross-module lookups
		module.Register(m.Name(), m.Ports())
	}
	return mods
}

// Mount mounts the API onto the given router and returns the workers the caller must run
func Mount(r phttp.Router, opt Options) []Worker {
	deps := Deps(opt.Config, opt.Store, opt.Tokens, opt.Logger)
	mods := Modules(deps)
	deps.Log.Info().Strs("modules", module.Names()).Msg("api modules registered")

	apiCfg := opt.Config.Prefix("CORE_API_")
	stack := httpkit.CommonStack(httpkit.StackOptions{
		Timeout: apiCfg.MayDuration("REQUEST_TIMEOUT", 30*time.Second),
		Slow:    apiCfg.MayDuration("SLOW_REQUEST", 500*time.Millisecond),
		CORS: middleware.CORSOptions{
			AllowedOrigins:   apiCfg.MayCSV("CORS_ORIGINS", []string{"*"}),
			AllowCredentials: apiCfg.MayBool("CORS_CREDENTIALS", false),
		},
	})
	// pprof is admin only; without a token verifier every request fails RequireRole
	debug := []func(http.Handler) http.Handler{middleware.RequireRole(phttp.JSON, auth.RoleAdmin)}
	if opt.Tokens != nil {
		stack = append(stack, httpkit.Auth(opt.Tokens))
		debug = append([]func(http.Handler) http.Handler{httpkit.Auth(opt.Tokens)}, debug...)
	}

	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler, debug...)

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		for _, m := range mods {
			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})

	var workers []Worker
	for _, m := range mods {
		if p, ok := module.PortsOf[ordersmod.Ports](m); ok && p.Expirer != nil {
			workers = append(workers, p.Expirer)
		}
	}
	return workers
}
