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

	_ "github.com/jhoicas/materiales-api/docs" // registro de la documentación swagger generada
	appanalytics "github.com/jhoicas/materiales-api/internal/application/analytics"
	"github.com/jhoicas/materiales-api/internal/application/auth"
	"github.com/jhoicas/materiales-api/internal/application/importer"
	appmaterial "github.com/jhoicas/materiales-api/internal/application/material"
	"github.com/jhoicas/materiales-api/internal/application/usecase"
	"github.com/jhoicas/materiales-api/internal/domain/material"
	"github.com/jhoicas/materiales-api/internal/domain/repository"
	"github.com/jhoicas/materiales-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/materiales-api/internal/infrastructure/pdf"
	"github.com/jhoicas/materiales-api/internal/infrastructure/postgres"
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
		Service: cfg.App.Name,
		Env:     cfg.App.Env,
		Level:   "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var (
		matRepo  repository.MaterialRepository
		opRepo   repository.OperarioRepository
		catRepo  repository.CatalogoRepository
		txRunner appmaterial.TxRunner
	)
	if cfg.DB.Driver == "memory" {
		// Modo demo / desarrollo sin base de datos
		store := memory.NewStore()
		matRepo = memory.NewMaterialRepository(store)
		opRepo = memory.NewOperarioRepository(store)
		catRepo = memory.NewCatalogoRepository(store)
		txRunner = memory.NewTxRunner(store)
	} else {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("esquema de base de datos")
		}
		matRepo = postgres.NewMaterialRepository(pool)
		opRepo = postgres.NewOperarioRepository(pool)
		catRepo = postgres.NewCatalogoRepository(pool)
		txRunner = postgres.NewTxRunner(pool)
	}

	resolver := material.NewResolver(cfg.Alert.AvisoDias)
	lifecycleUC := appmaterial.NewLifecycleUseCase(txRunner, opRepo, resolver)
	queryUC := appmaterial.NewQueryUseCase(matRepo, opRepo, catRepo, resolver)
	adminUC := appmaterial.NewAdminUseCase(matRepo)
	queueUC := appmaterial.NewScanQueueUseCase(matRepo, lifecycleUC, resolver)
	dashboardUC := appanalytics.NewDashboardUseCase(matRepo, opRepo, resolver)
	operarioUC := usecase.NewOperarioUseCase(opRepo, matRepo)
	importUC := importer.NewImportUseCase(opRepo, lifecycleUC)
	exportUC := importer.NewExportUseCase(matRepo, queryUC)
	labels := infrapdf.NewMarotoLabelGenerator()
	authUC := auth.NewAuthUseCase(opRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Materiales API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		LifecycleUC: lifecycleUC,
		QueryUC:     queryUC,
		AdminUC:     adminUC,
		QueueUC:     queueUC,
		DashboardUC: dashboardUC,
		OperarioUC:  operarioUC,
		AuthUC:      authUC,
		ImportUC:    importUC,
		ExportUC:    exportUC,
		Labels:      labels,
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
