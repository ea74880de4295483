// Package commands implements the storefront-ctl command line
package commands

import (
	"context"
	"fmt"

	"storefront/internal/core/version"
	"storefront/internal/platform/config"
	"storefront/internal/platform/logger"
	"storefront/internal/platform/store"

	"github.com/spf13/cobra"
)

// NewRootCommand creates the root CLI command with all subcommands registered
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "storefront-ctl",
		Short:   "Storefront operations: migrations, catalog seeding, admin accounts",
		Version: version.For("storefront-ctl").String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			opt := logger.FromEnv()
			opt.Component = "ctl"
			logger.Init(opt)
		},
	}

	rootCmd.AddCommand(newMigrateCommand())
	rootCmd.AddCommand(newSeedCommand())
	rootCmd.AddCommand(newCreateAdminCommand())
	rootCmd.AddCommand(newPriceCommand())

	return rootCmd
}

// openStore opens the backends named by SERVICE_PGSQL_* and SERVICE_CLICKHOUSE_*
func openStore(ctx context.Context) (*store.Store, config.Conf, error) {
	root := config.New()
	st, err := store.Open(ctx, store.ConfigFromEnv(root, "ctl", "cli"), store.WithLogger(*logger.Get()))
	if err != nil {
		return nil, root, fmt.Errorf("opening store: %w", err)
	}
	return st, root, nil
}

func closeStore(st *store.Store) {
	if err := st.Close(context.Background()); err != nil {
		logger.Get().Error().Err(err).Msg("failed to close store")
	}
}
