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

	"github.com/cocinacentral/ckms-api/internal/application/reports"
	"github.com/cocinacentral/ckms-api/internal/application/usecase"
	infrapdf "github.com/cocinacentral/ckms-api/internal/infrastructure/pdf"
	"github.com/cocinacentral/ckms-api/internal/infrastructure/postgres"
	httpRouter "github.com/cocinacentral/ckms-api/internal/interfaces/http"
	"github.com/cocinacentral/ckms-api/pkg/config"
	"github.com/cocinacentral/ckms-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	reportsRepo := postgres.NewReportsRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	storeRepo := postgres.NewStoreRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)

	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	reportsSvc := reports.NewService(reportsRepo, pdfGenerator)

	orderUC := usecase.NewOrderUseCase(orderRepo)
	storeUC := usecase.NewStoreUseCase(storeRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // los PDF grandes tardan más en salir
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "CKMS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ReportsSvc: reportsSvc,
		OrderUC:    orderUC,
		StoreUC:    storeUC,
		ProductUC:  productUC,
		CategoryUC: categoryUC,
		Log:        log,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
