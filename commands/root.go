package commands

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"hotel-orders/config"
	"hotel-orders/internal/app"
)

// NewRootCmd builds the hotel-orders command tree. Without a subcommand it
// runs the report.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "hotel-orders",
		Short:         "Hotel management and order tracking over a relational store",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runReportCmd,
	}

	root.PersistentFlags().String("env-file", "", "Environment file to load (default .env when present)")
	root.PersistentFlags().String("driver", "", "Database driver: mysql, postgres or sqlite (overrides DB_DRIVER)")
	root.PersistentFlags().String("dsn", "", "Connection string (overrides the DSN built from the environment)")

	root.AddCommand(
		ReportCmd(),
		SeedCmd(),
		OrdersCmd(),
		MigrateCmd(),
		ServeCmd(),
	)
	return root
}

// openApp resolves the configuration from flags and environment, connects
// and migrates. The caller closes the returned handle.
func openApp(cmd *cobra.Command) (*app.App, *config.Config, error) {
	envFile, _ := cmd.Flags().GetString("env-file")
	driver, _ := cmd.Flags().GetString("driver")
	dsn, _ := cmd.Flags().GetString("dsn")

	cfg, err := config.Load(envFile, config.Overrides{Driver: driver, DSN: dsn})
	if err != nil {
		return nil, nil, err
	}

	db, err := config.Open(cfg)
	if err != nil {
		return nil, nil, err
	}
	if err := config.Migrate(db); err != nil {
		_ = config.Close(db)
		return nil, nil, fmt.Errorf("migrate: %w", err)
	}
	log.Printf("✅ Connected to %s database and applied migrations", cfg.Driver)
	return app.New(db), cfg, nil
}

func closeApp(a *app.App) {
	if err := config.Close(a.DB); err != nil {
		log.Printf("⚠️  closing database: %v", err)
	}
}
