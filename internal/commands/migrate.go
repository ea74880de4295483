package commands

import (
	"fmt"

	"storefront/internal/platform/store/migrate"

	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending postgres migrations and the clickhouse schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			st, _, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer closeStore(st)

			applied, err := migrate.Postgres(ctx, st.PG)
			if err != nil {
				return fmt.Errorf("postgres migrations: %w", err)
			}
			for _, name := range applied {
				fmt.Fprintf(cmd.OutOrStdout(), "applied %s\n", name)
			}
			if len(applied) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "postgres is up to date")
			}

			if st.CH == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "clickhouse disabled, skipped")
				return nil
			}
			if err := migrate.Clickhouse(ctx, st.CH); err != nil {
				return fmt.Errorf("clickhouse migrations: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "clickhouse schema ensured")
			return nil
		},
	}
}
