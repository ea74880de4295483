// Package migrate applies the embedded postgres and clickhouse schemas
//
// Files are named NNNN_name.sql and applied in lexical order. Postgres migrations are
// recorded in schema_migrations and each runs in its own transaction under an advisory
// lock, so concurrent starts are safe. ClickHouse statements are idempotent DDL and
// simply re-run.
package migrate

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"storefront/internal/platform/logger"
	"storefront/internal/platform/store"
)

//go:embed postgres/*.sql
var postgresFS embed.FS

//go:embed clickhouse/*.sql
var clickhouseFS embed.FS

// lockKey is the pg_advisory_xact_lock key shared by all migration transactions
const lockKey = 7_301_202

// Migration is one schema file
type Migration struct {
	Version string
	Name    string
	SQL     string
}

// Load reads dir from fsys and returns its migrations ordered by version
func Load(fsys fs.FS, dir string) ([]Migration, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}
	var out []Migration
	seen := map[string]string{}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		base := strings.TrimSuffix(e.Name(), ".sql")
		version, name, ok := strings.Cut(base, "_")
		if !ok || version == "" {
			return nil, fmt.Errorf("migration %s: want NNNN_name.sql", e.Name())
		}
		if prev, dup := seen[version]; dup {
			return nil, fmt.Errorf("migration version %s used by %s and %s", version, prev, e.Name())
		}
		seen[version] = e.Name()

		b, err := fs.ReadFile(fsys, path.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		out = append(out, Migration{Version: version, Name: name, SQL: string(b)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Version < out[j].Version })
	return out, nil
}

const createTable = `CREATE TABLE IF NOT EXISTS schema_migrations (
	version    text PRIMARY KEY,
	name       text NOT NULL,
	applied_at timestamptz NOT NULL DEFAULT now()
)`

// Postgres applies pending embedded migrations and returns the versions it applied
func Postgres(ctx context.Context, db store.TxRunner) ([]string, error) {
	ms, err := Load(postgresFS, "postgres")
	if err != nil {
		return nil, err
	}
	return apply(ctx, db, ms)
}

func apply(ctx context.Context, db store.TxRunner, ms []Migration) ([]string, error) {
	log := logger.Named("migrate")
	if _, err := db.Exec(ctx, createTable); err != nil {
		return nil, fmt.Errorf("create schema_migrations: %w", err)
	}

	var applied []string
	for _, m := range ms {
		ran := false
		err := db.Tx(ctx, func(q store.RowQuerier) error {
			if _, err := q.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, lockKey); err != nil {
				return err
			}
			var n int
			if err := q.QueryRow(ctx, `SELECT count(*) FROM schema_migrations WHERE version = $1`, m.Version).Scan(&n); err != nil {
				return err
			}
			if n > 0 {
				return nil
			}
			if _, err := q.Exec(ctx, m.SQL); err != nil {
				return err
			}
			if _, err := q.Exec(ctx, `INSERT INTO schema_migrations (version, name) VALUES ($1, $2)`, m.Version, m.Name); err != nil {
				return err
			}
			ran = true
			return nil
		})
		if err != nil {
			return applied, fmt.Errorf("migration %s_%s: %w", m.Version, m.Name, err)
		}
		if ran {
			log.Info().Str("version", m.Version).Str("name", m.Name).Msg("migration applied")
			applied = append(applied, m.Version)
		}
	}
	return applied, nil
}

// Clickhouse runs every embedded clickhouse statement
func Clickhouse(ctx context.Context, ch store.Clickhouse) error {
	ms, err := Load(clickhouseFS, "clickhouse")
	if err != nil {
		return err
	}
	for _, m := range ms {
		for _, stmt := range statements(m.SQL) {
			if err := ch.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("clickhouse %s_%s: %w", m.Version, m.Name, err)
			}
		}
	}
	return nil
}

// statements splits a file on ';' and drops empty chunks
func statements(sql string) []string {
	var out []string
	for _, s := range strings.Split(sql, ";") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
