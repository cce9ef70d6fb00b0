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
	"github.com/shopspring/decimal"

	"github.com/ncastellon/comercial-api/internal/application/billing"
	"github.com/ncastellon/comercial-api/internal/application/inventory"
	"github.com/ncastellon/comercial-api/internal/application/usecase"
	"github.com/ncastellon/comercial-api/internal/infrastructure/postgres"
	httpRouter "github.com/ncastellon/comercial-api/internal/interfaces/http"
	"github.com/ncastellon/comercial-api/pkg/config"
	"github.com/ncastellon/comercial-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:      cfg.App.Env,
		Level:    cfg.App.LogLevel,
		Servicio: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	log.Info().Msg("migraciones aplicadas")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	tipoCambioDefault, err := decimal.NewFromString(cfg.Negocio.TipoCambioDefault)
	if err != nil {
		log.Fatal().Err(err).Str("valor", cfg.Negocio.TipoCambioDefault).Msg("TIPO_CAMBIO_DEFAULT inválido")
	}

	invRepo := postgres.NewInventarioRepository(pool)
	movRepo := postgres.NewMovimientoRepository(pool)
	tipoMovRepo := postgres.NewTipoMovimientoRepository(pool)
	clienteRepo := postgres.NewClienteRepository(pool)
	ventaRepo := postgres.NewVentaRepository(pool)
	consRepo := postgres.NewConsecutivoRepository(pool)
	devRepo := postgres.NewDevolucionRepository(pool)
	tipoCambioRepo := postgres.NewTipoCambioRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	tipoCambioUC := billing.NewTipoCambioUseCase(tipoCambioRepo, tipoCambioDefault)
	movimientoUC := inventory.NewRegistrarMovimientoUseCase(txRunner, invRepo, tipoMovRepo, movRepo, tipoCambioUC)
	articuloUC := usecase.NewArticuloUseCase(invRepo)
	clienteUC := billing.NewClienteUseCase(clienteRepo)
	crearVentaUC := billing.NewCrearVentaUseCase(
		txRunner, movimientoUC,
		clienteRepo, invRepo, tipoMovRepo, ventaRepo, consRepo,
		tipoCambioUC, cfg.Negocio.LineasPorPagina,
	)
	devolucionUC := billing.NewDevolucionUseCase(
		txRunner, movimientoUC,
		tipoMovRepo, devRepo, ventaRepo, tipoCambioUC,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en /docs, solo si existe el spec generado con `swag init`.
	// El middleware hace panic si el archivo no está, así que se comprueba antes.
	const swaggerSpec = "./docs/swagger.json"
	if _, err := os.Stat(swaggerSpec); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerSpec,
			Path:     "docs",
			Title:    "Comercial API",
		}))
	} else {
		log.Warn().Str("archivo", swaggerSpec).Msg("spec de swagger no encontrado, UI deshabilitada")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ArticuloUC:   articuloUC,
		MovimientoUC: movimientoUC,
		TipoMovRepo:  tipoMovRepo,
		ClienteUC:    clienteUC,
		CrearVentaUC: crearVentaUC,
		DevolucionUC: devolucionUC,
		TipoCambioUC: tipoCambioUC,
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
