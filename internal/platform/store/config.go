package store

import (
	"time"

	"storefront/internal/platform/config"
)

// Config aggregates per backend configuration
type Config struct {
	AppName string

	PG PGConfig
	CH CHConfig
}

// PGConfig configures postgres connectivity and tracing
type PGConfig struct {
	Enabled     bool
	URL         string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int

	StatementTimeout time.Duration // default 30s
	ConnectRetries   int           // default 20
	PingTimeout      time.Duration // default 3s
}

// CHConfig configures clickhouse connectivity
type CHConfig struct {
	Enabled    bool
	URL        string
	ClientName string
	ClientTag  string
}

// ConfigFromEnv reads SERVICE_PGSQL_* and SERVICE_CLICKHOUSE_*; postgres is mandatory, clickhouse optional
// role names the process in clickhouse client info ("api", "ctl")
func ConfigFromEnv(cfg config.Conf, role, tag string) Config {
	pgc := cfg.Prefix("SERVICE_PGSQL_")
	chc := cfg.Prefix("SERVICE_CLICKHOUSE_")
	return Config{
		AppName: "storefront-" + role,
		PG: PGConfig{
			Enabled:          true,
			URL:              pgc.MustString("DSN"),
			MaxConns:         int32(pgc.MayInt("MAX_CONNS", 10)),
			LogSQL:           pgc.MayBool("LOG_SQL", false),
			SlowQueryMs:      pgc.MayInt("SLOW_MS", 250),
			StatementTimeout: pgc.MayDuration("STATEMENT_TIMEOUT", 30*time.Second),
			ConnectRetries:   pgc.MayInt("CONNECT_RETRIES", 20),
			PingTimeout:      pgc.MayDuration("PING_TIMEOUT", 3*time.Second),
		},
		CH: CHConfig{
			Enabled:    chc.MayBool("ENABLED", false),
			URL:        chc.MayString("DSN", "clickhouse://default:@localhost:9000/storefront"),
			ClientName: role,
			ClientTag:  tag,
		},
	}
}
