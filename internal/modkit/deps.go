// Package modkit provides module wiring and core deps
package modkit

import (
	"storefront/internal/modkit/repokit"
	"storefront/internal/platform/auth"
	"storefront/internal/platform/config"
	"storefront/internal/platform/logger"
	"storefront/internal/platform/store"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log    logger.Logger
	Cfg    config.Conf
	PG     repokit.TxRunner
	CH     store.Clickhouse // nil when clickhouse is disabled
	Tokens *auth.Tokens
}
