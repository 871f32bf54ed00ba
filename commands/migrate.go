package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func MigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cfg, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer closeApp(a)

			fmt.Fprintf(cmd.OutOrStdout(), "Schema is up to date (%s)\n", cfg.Driver)
			return nil
		},
	}
}

func SeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the sample rooms, customers and bill into an empty store",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer closeApp(a)

			return a.Seeder.Seed(cmd.Context())
		},
	}
}
