package main

import (
	"github.com/spf13/cobra"

	"github.com/joestump/devguide/internal/config"
	"github.com/joestump/devguide/internal/db"
	"github.com/joestump/devguide/internal/logging"
)

func newMigrateCmd() *cobra.Command {
	var status bool
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger := logging.New(cfg)

			database, err := db.New(cfg.DB.Driver, cfg.DB.DSN)
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			if status {
				return db.Status(database, cfg.DB.Driver)
			}
			if err := db.Migrate(database, cfg.DB.Driver); err != nil {
				return err
			}

			logger.Info("migrations complete", "driver", cfg.DB.Driver)
			return nil
		},
	}
	cmd.Flags().BoolVar(&status, "status", false, "print applied and pending migrations instead of migrating")
	return cmd
}
