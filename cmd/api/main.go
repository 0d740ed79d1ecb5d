package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/materiales-api/internal/application/analytics"
	"github.com/jhoicas/materiales-api/internal/application/auth"
	"github.com/jhoicas/materiales-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/materiales-api/internal/infrastructure/pdf"
	"github.com/jhoicas/materiales-api/internal/infrastructure/postgres"
	"github.com/jhoicas/materiales-api/internal/infrastructure/postgres/migrations"
	"github.com/jhoicas/materiales-api/internal/infrastructure/qrimage"
	httpRouter "github.com/jhoicas/materiales-api/internal/interfaces/http"
	"github.com/jhoicas/materiales-api/pkg/config"
	"github.com/jhoicas/materiales-api/pkg/logger"
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
		Str("version", cfg.App.Version).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := migrations.Up(pool); err != nil {
		log.Fatal().Err(err).Msg("migraciones de esquema")
	}

	materialRepo := postgres.NewMaterialRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Bootstrap admin: idempotente, fuera del contrato de régimen del registro.
	bootstrapper := auth.NewBootstrapper(userRepo, auth.BootstrapConfig{
		Username: cfg.Bootstrap.AdminUsername,
		Password: cfg.Bootstrap.AdminPassword,
	})
	created, err := bootstrapper.EnsureAdmin(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("bootstrap del usuario admin")
	}
	if created {
		log.Warn().
			Str("username", cfg.Bootstrap.AdminUsername).
			Msg("usuario admin inicial creado; cambie la contraseña por defecto")
	}

	renderer := qrimage.NewRenderer()
	labelGen := infrapdf.NewMarotoLabelGenerator()
	materialUC := usecase.NewMaterialUseCase(materialRepo, txRunner, renderer, labelGen)
	dashboardUC := analytics.NewDashboardUseCase(reportRepo, materialRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New()) // frontend React y app móvil de conferencia
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Materiales API",
	}))

	// Liveness: solo reporta que el proceso vive, sin tocar dependencias.
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"version":   cfg.App.Version,
		})
	})

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "API Sistema de Control de Materiales",
			"docs":    "/docs",
			"version": cfg.App.Version,
		})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		MaterialUC:  materialUC,
		DashboardUC: dashboardUC,
		AuthUC:      authUC,
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
