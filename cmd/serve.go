package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/krishkalaria12/vitalplan-api/ai"
	"github.com/krishkalaria12/vitalplan-api/auth"
	"github.com/krishkalaria12/vitalplan-api/database"
	handler "github.com/krishkalaria12/vitalplan-api/handlers"
	"github.com/krishkalaria12/vitalplan-api/logger"
	"github.com/krishkalaria12/vitalplan-api/marketplace"
	"github.com/krishkalaria12/vitalplan-api/middleware"
	"github.com/krishkalaria12/vitalplan-api/repository"
	"github.com/krishkalaria12/vitalplan-api/router"
	"github.com/krishkalaria12/vitalplan-api/storage"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var port string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run migrations and start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "Listen port (overrides PORT)")
}

func runServe(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, db, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Sync()
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Error("error closing the database connection", zap.Error(err))
		}
	}()

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	provider, err := ai.NewProvider(ctx, ai.ProviderConfig{
		Name:    cfg.AIProvider,
		Model:   cfg.AIModel,
		APIKey:  cfg.AIAPIKey,
		BaseURL: cfg.AIBaseURL,
		Timeout: cfg.AITimeout,
	})
	if err != nil {
		return fmt.Errorf("create AI provider: %w", err)
	}

	tokens := auth.NewService(auth.Options{
		Secret:         cfg.JWTSecret,
		TokenDuration:  cfg.TokenDuration,
		CookieDuration: cfg.CookieDuration,
		URL:            cfg.AppURL,
	})
	users := repository.NewUsers(db)

	h := &handler.Handler{
		Users:     users,
		Goals:     repository.NewGoals(db),
		DietPlans: repository.NewDietPlans(db),
		Orders:    repository.NewOrders(db),
		Scans:     repository.NewScans(db),
		AI: ai.NewService(provider, ai.Options{
			MaxTokens:   cfg.AIMaxTokens,
			Temperature: cfg.AITemperature,
			Timeout:     cfg.AITimeout,
		}),
		Tokens:  tokens,
		Catalog: marketplace.Default(),
		Config: handler.Config{
			Version:        Version,
			MaxFileSize:    cfg.MaxFileSize,
			CookieDuration: cfg.CookieDuration,
			SecureCookie:   cfg.Production(),
		},
	}

	if cfg.GCSBucketName != "" {
		uploader, err := storage.NewGCSUploader(ctx, cfg.GCSBucketName, cfg.GCSUploadPath)
		if err != nil {
			return err
		}
		defer uploader.Close()
		h.Uploader = uploader
	}

	app := router.NewApp(router.Options{
		AppName:        "VitalPlan API",
		AllowedOrigins: cfg.AllowedOrigins,
		MaxFileSize:    cfg.MaxFileSize,
		AccessLog:      true,
	})
	router.SetupRoutes(app, h, middleware.AuthMiddleware(tokens, users))

	addr := cfg.Port
	if port != "" {
		addr = port
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("server is listening", zap.String("port", addr), zap.String("ai_provider", cfg.AIProvider))
	return listenUntilDone(ctx, app, ":"+addr)
}

type server interface {
	Listen(addr string) error
	Shutdown() error
}

// listenUntilDone serves until Listen fails or ctx is cancelled, then shuts
// the server down.
func listenUntilDone(ctx context.Context, srv server, addr string) error {
	listenErr := make(chan error, 1)
	go func() {
		listenErr <- srv.Listen(addr)
	}()

	select {
	case err := <-listenErr:
		return err
	case <-ctx.Done():
		logger.Info("gracefully shutting down")
		if err := srv.Shutdown(); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return <-listenErr
	}
}
