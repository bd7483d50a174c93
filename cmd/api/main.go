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

	"github.com/edukits/kittrack-api/internal/application/assignment"
	"github.com/edukits/kittrack-api/internal/application/auth"
	"github.com/edukits/kittrack-api/internal/application/client"
	"github.com/edukits/kittrack-api/internal/application/inventory"
	"github.com/edukits/kittrack-api/internal/application/kit"
	"github.com/edukits/kittrack-api/internal/application/stock"
	infrapdf "github.com/edukits/kittrack-api/internal/infrastructure/pdf"
	"github.com/edukits/kittrack-api/internal/infrastructure/postgres"
	httpRouter "github.com/edukits/kittrack-api/internal/interfaces/http"
	"github.com/edukits/kittrack-api/pkg/config"
	"github.com/edukits/kittrack-api/pkg/logger"
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

	userRepo := postgres.NewUserRepository(pool)
	rawRepo := postgres.NewRawMaterialRepository(pool)
	preRepo := postgres.NewPreprocessedGoodRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	kitRepo := postgres.NewKitRepository(pool)
	kitMaterialRepo := postgres.NewKitMaterialRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	assignmentRepo := postgres.NewAssignmentRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	ledgerUC := stock.NewLedgerUseCase(txRunner, stockRepo)
	inventoryUC := inventory.NewUseCase(rawRepo, preRepo, categoryRepo)
	kitUC := kit.NewUseCase(kitRepo, kitMaterialRepo, rawRepo, preRepo)
	clientUC := client.NewUseCase(clientRepo)
	assignmentUC := assignment.NewLifecycleUseCase(txRunner, clientRepo, kitRepo, assignmentRepo, userRepo)

	// PDF: remito de entrega de asignaciones
	noteGenerator := infrapdf.NewMarotoDeliveryNoteGenerator()
	deliveryNoteUC := assignment.NewDeliveryNoteUseCase(
		assignmentRepo, clientRepo, kitRepo, userRepo,
		kitMaterialRepo, rawRepo, preRepo, noteGenerator,
	)

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
		Title:    "KitTrack API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		InventoryUC:  inventoryUC,
		LedgerUC:     ledgerUC,
		KitUC:        kitUC,
		ClientUC:     clientUC,
		AssignmentUC: assignmentUC,
		DeliveryNote: deliveryNoteUC,
		JWTSecret:    cfg.JWT.Secret,
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
