package router

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	handler "github.com/krishkalaria12/vitalplan-api/handlers"
)

type Options struct {
	AppName        string
	AllowedOrigins []string
	// MaxFileSize is the largest accepted scan upload. The body limit sits
	// above it so oversized files reach the handler and get a 400.
	MaxFileSize int64
	AccessLog   bool
}

func NewApp(opts Options) *fiber.App {
	bodyLimit := fiber.DefaultBodyLimit
	if limit := int(opts.MaxFileSize * 2); limit > bodyLimit {
		bodyLimit = limit
	}

	app := fiber.New(fiber.Config{
		AppName:      opts.AppName,
		ErrorHandler: handler.ErrorHandler,
		BodyLimit:    bodyLimit,
	})

	app.Use(recover.New())
	if opts.AccessLog {
		app.Use(logger.New())
	}
	if len(opts.AllowedOrigins) > 0 {
		app.Use(cors.New(cors.Config{
			AllowOrigins:     strings.Join(opts.AllowedOrigins, ","),
			AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
			AllowCredentials: true,
		}))
	}

	return app
}

func SetupRoutes(app *fiber.App, h *handler.Handler, authMW fiber.Handler) {
	api := app.Group("/api")
	api.Get("/", h.Root)
	api.Get("/health", h.Health)

	// Auth
	auth := api.Group("/auth")
	auth.Post("/register", h.Register)
	auth.Post("/login", h.Login)
	auth.Post("/logout", h.Logout)

	// Users
	users := api.Group("/users", authMW)
	users.Get("/me", h.GetProfile)
	users.Put("/me", h.UpdateProfile)
	users.Delete("/me", h.DeleteProfile)

	// Goals
	goals := api.Group("/goals", authMW)
	goals.Get("/", h.ListGoals)
	goals.Post("/", h.CreateGoal)
	goals.Put("/:id", h.UpdateGoal)
	goals.Delete("/:id", h.DeleteGoal)

	// Diet plans
	plans := api.Group("/diet-plans", authMW)
	plans.Get("/", h.ListDietPlans)
	plans.Post("/", h.CreateDietPlan)
	plans.Post("/generate", h.GenerateDietPlan)
	plans.Get("/:id", h.GetDietPlan)
	plans.Put("/:id", h.UpdateDietPlan)
	plans.Delete("/:id", h.DeleteDietPlan)

	// Orders
	orders := api.Group("/orders", authMW)
	orders.Post("/", h.CreateOrder)
	orders.Get("/", h.ListOrders)
	orders.Get("/:id", h.GetOrder)
	orders.Put("/:id/status", h.UpdateOrderStatus)

	// Scanner
	scanner := api.Group("/scanner", authMW)
	scanner.Post("/analyze-image", h.AnalyzeImage)
	scanner.Get("/history", h.ScanHistory)
	scanner.Delete("/history/:id", h.DeleteScan)
	scanner.Post("/history/:id/insights", h.ScanInsights)
	scanner.Post("/barcode/:barcode", h.ScanBarcode)

	// Marketplace
	market := api.Group("/marketplace", authMW)
	market.Get("/items", h.ListItems)
	market.Get("/items/:id", h.GetItem)
	market.Get("/categories", h.ListCategories)
	market.Get("/recommendations", h.Recommendations)
}
