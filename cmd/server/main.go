// @title Onboard Panel API
// @version 1.0
// @description HR onboarding and applicant-tracking backend
// @BasePath /

package main

import (
	"context"
	"log"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	_ "onboard_panel/docs"

	"onboard_panel/configs"
	"onboard_panel/internal/aiform"
	mid "onboard_panel/internal/middleware"
	"onboard_panel/internal/repository"
	"onboard_panel/internal/routes"
	"onboard_panel/internal/storage"
	"onboard_panel/pkg/logger"
	"onboard_panel/services"
)

func main() {
	cfg, err := configs.Load()
	if err != nil {
		log.Fatal("config: ", err)
	}

	zlog, err := logger.Init(cfg)
	if err != nil {
		log.Fatal("logger: ", err)
	}
	defer zlog.Sync()

	// --- MongoDB connection ---
	client, err := configs.ConnectMongo(context.Background(), cfg)
	if err != nil {
		zlog.Fatal("mongo connect failed", zap.Error(err))
	}
	defer client.Disconnect(context.Background())
	db := client.Database(cfg.DBName)
	zlog.Info("connected to MongoDB", zap.String("db", cfg.DBName))

	// --- Stores and services ---
	blobs := storage.NewGridFSStore(db)
	candidates := repository.NewCandidateRepository(db)
	companies := repository.NewCompanyRepository(db)
	users := repository.NewUserRepository(db)

	deps := routes.Deps{
		Lifecycle: services.NewLifecycleService(candidates, blobs),
		Company:   services.NewCompanyService(companies, blobs),
		Workflow:  services.NewWorkflowService(companies),
		Admin:     services.NewAdminService(users, cfg.JWTSecret),
		Blobs:     blobs,
		AIForm:    aiform.NewClient(cfg.AIFormURL, cfg.AIFormAPIKey),
		JWTSecret: cfg.JWTSecret,
	}

	// --- Fiber app setup ---
	app := fiber.New()
	app.Use(requestid.New())
	app.Use(mid.Metrics())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.FrontendOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	app.Get("/docs/*", swagger.HandlerDefault)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	routes.RegisterRoutes(app, deps)

	zlog.Info("listening", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
