//go:build integration_pg

package pg

import (
	"context"
	"testing"
	"time"

	"storefront/internal/platform/testkit"

	"github.com/stretchr/testify/require"
)

func TestOpen_ApplicationName_Integration(t *testing.T) {
	dsn := testkit.Postgres(t)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	p, err := Open(ctx, Config{URL: dsn, AppName: "storefront-it", MaxConns: 2}, nil, nil)
	require.NoError(t, err)
	t.Cleanup(p.Close)

	var app string
	require.NoError(t, p.Pool.QueryRow(ctx, `select current_setting('application_name')`).Scan(&app))
	require.Equal(t, "storefront-it", app)
}
