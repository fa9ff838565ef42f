package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/almacen-api/internal/application/auth"
	appinv "github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/application/sales"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/almacen-api/internal/interfaces/http"
	"github.com/jhoicas/almacen-api/pkg/config"
	"github.com/jhoicas/almacen-api/pkg/logger"
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
	productRepo := postgres.NewProductRepository(pool)
	agencyRepo := postgres.NewAgencyRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	entryRepo := postgres.NewEntryRepository(pool)
	outputRepo := postgres.NewOutputRepository(pool)
	purchaseRepo := postgres.NewPurchaseRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productUC := usecase.NewProductUseCase(productRepo)
	agencyUC := usecase.NewAgencyUseCase(agencyRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo, agencyRepo)
	clientUC := usecase.NewClientUseCase(clientRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	stockUC := usecase.NewStockUseCase(stockRepo, productRepo, warehouseRepo)
	movementUC := appinv.NewRegisterMovementUseCase(txRunner, productRepo, warehouseRepo)
	entryUC := appinv.NewEntryUseCase(txRunner, entryRepo, productRepo, supplierRepo, warehouseRepo, purchaseRepo)
	outputUC := appinv.NewOutputUseCase(txRunner, outputRepo, productRepo, clientRepo, warehouseRepo)
	purchaseUC := sales.NewPurchaseUseCase(txRunner, purchaseRepo, productRepo, supplierRepo, warehouseRepo)
	saleUC := sales.NewSaleUseCase(txRunner, saleRepo, productRepo, clientRepo, warehouseRepo, userRepo)
	paymentUC := sales.NewPaymentUseCase(txRunner, paymentRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if !httpRouter.MountSwagger(app, "./docs/swagger.json", "Almacén API") {
		log.Warn().Msg("docs/swagger.json no encontrado; UI de Swagger deshabilitada (generar con swag init)")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ProductUC:   productUC,
		AgencyUC:    agencyUC,
		WarehouseUC: warehouseUC,
		ClientUC:    clientUC,
		SupplierUC:  supplierUC,
		StockUC:     stockUC,
		MovementUC:  movementUC,
		EntryUC:     entryUC,
		OutputUC:    outputUC,
		PurchaseUC:  purchaseUC,
		SaleUC:      saleUC,
		PaymentUC:   paymentUC,
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
