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

	"github.com/maitr/sitebuilder-api/internal/application/configurator"
	"github.com/maitr/sitebuilder-api/internal/application/render"
	"github.com/maitr/sitebuilder-api/internal/application/schema"
	"github.com/maitr/sitebuilder-api/internal/application/usecase"
	infrapdf "github.com/maitr/sitebuilder-api/internal/infrastructure/pdf"
	"github.com/maitr/sitebuilder-api/internal/infrastructure/postgres"
	httpRouter "github.com/maitr/sitebuilder-api/internal/interfaces/http"
	"github.com/maitr/sitebuilder-api/pkg/config"
	"github.com/maitr/sitebuilder-api/pkg/logger"
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

	configurationRepo := postgres.NewConfigurationRepository(pool)
	normalizer := configurator.NewNormalizer(log.Zerolog())
	validator := schema.New(render.TemplateIDs())
	configurationUC := usecase.NewConfigurationUseCase(
		configurationRepo, normalizer, validator,
		cfg.Publish.BaseDomain, log.Zerolog(),
	)

	// PDF: carta imprimible del negocio
	menuPDF := infrapdf.NewMarotoMenuGenerator()

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
		Title:    "Sitebuilder API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ConfigurationUC: configurationUC,
		MenuPDF:         menuPDF,
		JWTSecret:       cfg.JWT.Secret,
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
