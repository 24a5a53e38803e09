package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/royhasan/StudyMate-Server/src/config"
	"github.com/royhasan/StudyMate-Server/src/controllers"
	"github.com/royhasan/StudyMate-Server/src/lib"
	"github.com/royhasan/StudyMate-Server/src/metrics"
	"github.com/royhasan/StudyMate-Server/src/middleware"
	"github.com/royhasan/StudyMate-Server/src/routes"
	"github.com/royhasan/StudyMate-Server/src/services"
	"github.com/royhasan/StudyMate-Server/src/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := lib.NewLogger(cfg.Environment)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, db, err := lib.ConnectDB(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	logger.Info("connected to MongoDB", zap.String("database", cfg.DBName))

	partnerStore := storage.NewPartnerStore(db)
	connectionStore := storage.NewConnectionStore(db)

	if err := connectionStore.EnsureIndexes(ctx); err != nil {
		logger.Fatal("failed to create indexes", zap.Error(err))
	}

	partnerService := services.NewPartnerService(partnerStore, logger)
	connectionService := services.NewConnectionService(connectionStore, partnerStore, logger)

	partnerController := controllers.NewPartnerController(partnerService, logger)
	connectionController := controllers.NewConnectionController(connectionService, logger)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	httpMetrics := metrics.New(registry)

	app := fiber.New()

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger(logger))
	app.Use(middleware.HTTPMetrics(httpMetrics))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("StudyMate Server is Running Successfully!")
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	routes.PartnerRoutes(app, partnerController)
	routes.ConnectionRoutes(app, connectionController)

	go func() {
		logger.Info("StudyMate server running", zap.String("port", cfg.Port))
		if err := app.Listen(":" + cfg.Port); err != nil {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}

	disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Disconnect(disconnectCtx); err != nil {
		logger.Error("database disconnect failed", zap.Error(err))
	}
}
