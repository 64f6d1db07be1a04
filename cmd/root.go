package cmd

import (
	"fmt"
	"os"

	"github.com/krishkalaria12/vitalplan-api/config"
	"github.com/krishkalaria12/vitalplan-api/database"
	"github.com/krishkalaria12/vitalplan-api/logger"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

const Version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "vitalplan",
	Short: "VitalPlan API - nutrition goals, diet plans and food scanning",
	Long: `VitalPlan API serves user goals, AI generated diet plans, a supplement
marketplace, orders and food image scanning over REST.

Commands:
  serve    - Run migrations and start the HTTP server
  migrate  - Run database migrations only`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

// bootstrap loads settings, starts the logger and opens the database.
func bootstrap() (config.Settings, *gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Settings{}, nil, err
	}

	if err := logger.Init(cfg.Production(), cfg.LogLevel); err != nil {
		return config.Settings{}, nil, fmt.Errorf("init logger: %w", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return config.Settings{}, nil, err
	}
	return cfg, db, nil
}
