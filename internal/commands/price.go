package commands

import (
	"fmt"

	"storefront/internal/core/price"

	"github.com/spf13/cobra"
)

func newPriceCommand() *cobra.Command {
	priceCmd := &cobra.Command{
		Use:   "price",
		Short: "Price parsing tools",
	}
	priceCmd.AddCommand(newPriceParseCommand())
	return priceCmd
}

func newPriceParseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <value>...",
		Short: "Show how the API reads formatted prices such as \"R$ 1.234,50\"",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, raw := range args {
				d, err := price.Parse(raw)
				if err != nil {
					failed++
					fmt.Fprintf(cmd.OutOrStdout(), "%q\terror: %v\n", raw, err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%q\t%s\n", raw, d.String())
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d values could not be parsed", failed, len(args))
			}
			return nil
		},
	}
}
