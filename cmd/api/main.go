package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/cookbuddy/cookbuddy-backend/internal/config"
	"github.com/cookbuddy/cookbuddy-backend/internal/handler"
	"github.com/cookbuddy/cookbuddy-backend/internal/middleware"
	"github.com/cookbuddy/cookbuddy-backend/internal/repository"
	"github.com/cookbuddy/cookbuddy-backend/internal/service"
	"github.com/cookbuddy/cookbuddy-backend/pkg/ai"
	"github.com/cookbuddy/cookbuddy-backend/pkg/auth"
	"github.com/cookbuddy/cookbuddy-backend/pkg/database"
	"github.com/cookbuddy/cookbuddy-backend/pkg/email"
	"github.com/cookbuddy/cookbuddy-backend/pkg/payment"
	"github.com/cookbuddy/cookbuddy-backend/pkg/utils"
)

func main() {
	// Load .env if present
	_ = godotenv.Load()

	cfg := config.LoadConfig()

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := database.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		zapLogger.Fatal("database init failed", zap.Error(err))
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	// Payment gateway
	gateway, err := payment.NewMollieGateway(cfg.Mollie.APIKey, zapLogger)
	if err != nil {
		zapLogger.Fatal("gateway init failed", zap.Error(err))
	}
	if cfg.Mollie.APIKey == "" {
		zapLogger.Warn("MOLLIE_API_KEY is not set, checkout creation will fail")
	}

	// Recipe generation strategy is fixed at startup: remote model when a
	// credential is configured, static fallback otherwise.
	var generator ai.Generator
	if cfg.OpenAI.APIKey != "" {
		generator = ai.NewOpenAIGenerator(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL, cfg.OpenAI.Model, zapLogger)
	} else {
		zapLogger.Warn("OPENAI_API_KEY is not set, using static recipe fallback")
		generator = ai.NewStaticGenerator()
	}

	// Receipt mail is optional
	var mailer service.Mailer
	if cfg.Email.APIKey != "" {
		mailer = email.NewEmailService(cfg.Email.APIKey, cfg.Email.FromAddress, cfg.Email.FromName, zapLogger)
	}

	// Services
	paymentService := service.NewPaymentService(
		gateway,
		paymentRepo,
		userRepo,
		mailer,
		cfg.PublicBaseURL,
		cfg.FrontendURL,
		zapLogger,
	)
	userService := service.NewUserService(userRepo)
	recipeService := service.NewRecipeService(generator, userRepo, zapLogger)

	validator := utils.NewValidator()
	verifier := auth.NewTokenVerifier(cfg.JWTSecret)

	// Handlers
	paymentHandler := handler.NewPaymentHandler(paymentService)
	creditPackageHandler := handler.NewCreditPackageHandler()
	userHandler := handler.NewUserHandler(userService)
	recipeHandler := handler.NewRecipeHandler(recipeService, validator)

	// Router
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendURL,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, DELETE",
		AllowCredentials: true,
	}))
	app.Use(logger.New())
	app.Use(limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))

	api := app.Group("/api")

	// Public routes
	api.Post("/payments/webhook", paymentHandler.HandleWebhook)
	api.Get("/payments/packages", creditPackageHandler.GetAllPackages)
	api.Get("/payments/packages/:id", creditPackageHandler.GetPackageByID)

	// Manual confirmation stays public: it is the completion path for
	// local development where the webhook never arrives, and it only ever
	// re-queries the gateway.
	api.Post("/payments/:id/confirm", paymentHandler.ConfirmPayment)

	// Protected routes
	api.Use(middleware.AuthMiddleware(verifier))
	{
		user := api.Group("/user")
		user.Get("/profile", userHandler.GetMyProfile)
		user.Get("/credits", userHandler.GetCredits)

		payments := api.Group("/payments")
		payments.Post("/checkout/:packageId", paymentHandler.CreateCheckout)
		payments.Get("/history", paymentHandler.GetPaymentHistory)
		payments.Get("/:id", paymentHandler.GetPayment)

		recipes := api.Group("/recipes")
		recipes.Post("/suggestions", recipeHandler.SuggestRecipes)
	}

	zapLogger.Info("starting api", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		zapLogger.Fatal("server stopped", zap.Error(err))
	}
}
