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

	appalerting "github.com/jhoicas/Alertas-api/internal/application/alerting"
	"github.com/jhoicas/Alertas-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/Alertas-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Alertas-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Alertas-api/internal/interfaces/http"
	"github.com/jhoicas/Alertas-api/pkg/config"
	"github.com/jhoicas/Alertas-api/pkg/logger"
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
		Int("avg_window_days", cfg.Alerts.AvgWindowDays).
		Int("activity_window_days", cfg.Alerts.ActivityWindowDays).
		Msg("iniciando aplicación")

	if cfg.Alerts.AvgWindowDays <= 0 {
		// El proyector acota la ventana a 1 día; se avisa pero no se aborta.
		log.Warn().Int("avg_window_days", cfg.Alerts.AvgWindowDays).
			Msg("ventana de promedio no positiva: el proyector la tratará como 1 día")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	salesRepo := postgres.NewSalesRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)

	companyUC := usecase.NewCompanyUseCase(companyRepo)
	alertsUC := appalerting.NewLowStockAlertsUseCase(
		companyRepo, inventoryRepo, salesRepo, supplierRepo,
		cfg.Alerts.AvgWindowDays, cfg.Alerts.ActivityWindowDays,
	)
	reportGenerator := infrapdf.NewMarotoReportGenerator()
	reportUC := appalerting.NewAlertReportUseCase(alertsUC, companyRepo, reportGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Alertas API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompanyUC:   companyUC,
		Alerts:      alertsUC,
		AlertReport: reportUC,
		JWTSecret:   cfg.JWT.Secret,
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
