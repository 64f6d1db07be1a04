package cmd

import (
	"fmt"

	"github.com/krishkalaria12/vitalplan-api/database"
	"github.com/krishkalaria12/vitalplan-api/logger"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, err := bootstrap()
		if err != nil {
			return err
		}
		defer logger.Sync()
		defer database.Close(db)

		if err := database.Migrate(db); err != nil {
			return fmt.Errorf("migrate database: %w", err)
		}
		logger.Info("migrations applied")
		return nil
	},
}
