package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/frostkeep/freezer-api/internal/application/storage"
	"github.com/frostkeep/freezer-api/internal/application/usecase"
	"github.com/frostkeep/freezer-api/internal/infrastructure/postgres"
	httpRouter "github.com/frostkeep/freezer-api/internal/interfaces/http"
	"github.com/frostkeep/freezer-api/pkg/config"
	"github.com/frostkeep/freezer-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("apply schema migrations")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to PostgreSQL")
	}
	defer pool.Close()

	freezerRepo := postgres.NewFreezerRepository(pool)
	drawerRepo := postgres.NewDrawerRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	storageRepo := postgres.NewStorageRepository(pool)

	freezerUC := usecase.NewFreezerUseCase(freezerRepo)
	drawerUC := usecase.NewDrawerUseCase(drawerRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	storageUC := storage.NewUseCase(storageRepo, cfg.Freshness.LookaheadDays)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))
	app.Use(httpRouter.MetricsMiddleware())

	// Swagger UI locally: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Freezer API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AppName:   cfg.App.Name,
		FreezerUC: freezerUC,
		DrawerUC:  drawerUC,
		ProductUC: productUC,
		StorageUC: storageUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
