package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"storefront/internal/core/flexdate"
	"storefront/internal/modkit/module"
	"storefront/internal/platform/auth"
	"storefront/internal/platform/logger"
	"storefront/internal/platform/net/http/bind"
	"storefront/internal/services/api"
	usersdom "storefront/internal/services/api/users/domain"
	usersmod "storefront/internal/services/api/users/module"

	"github.com/spf13/cobra"
)

// adminPasswordEnv is read when --password is not given
const adminPasswordEnv = "STOREFRONT_ADMIN_PASSWORD"

func newCreateAdminCommand() *cobra.Command {
	var in usersdom.RegisterInput
	var birth string

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an account holding the ADMIN and CLIENT roles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if in.Password == "" {
				in.Password = os.Getenv(adminPasswordEnv)
			}
			if birth != "" {
				t, err := flexdate.Parse(birth)
				if err != nil {
					return fmt.Errorf("birth date: %w", err)
				}
				in.BirthDate = flexdate.On(t)
			}

			ctx := cmd.Context()
			st, root, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer closeStore(st)

			users := usersmod.New(api.Deps(root, st, nil, logger.Get()))
			prov := module.MustPortsOf[usersmod.Ports](users).Provisioner
			return runCreateAdmin(ctx, prov, in, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&in.Name, "name", "", "display name (required)")
	cmd.Flags().StringVar(&in.Email, "email", "", "login email (required)")
	cmd.Flags().StringVar(&in.Password, "password", "", "password, defaults to $"+adminPasswordEnv)
	cmd.Flags().StringVar(&in.Phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&birth, "birth-date", "", "birth date, e.g. 21/03/1990")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func runCreateAdmin(ctx context.Context, prov usersdom.Provisioner, in usersdom.RegisterInput, out io.Writer) error {
	if err := bind.Validate(in); err != nil {
		return fmt.Errorf("invalid account: %w", err)
	}
	u, err := prov.Create(ctx, in, auth.RoleAdmin, auth.RoleClient)
	if err != nil {
		return fmt.Errorf("creating admin: %w", err)
	}
	fmt.Fprintf(out, "created admin %s <%s>\n", u.ID, u.Email)
	return nil
}
