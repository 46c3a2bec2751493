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

	"github.com/revendix/revendix-api/internal/application/auth"
	"github.com/revendix/revendix-api/internal/application/importer"
	"github.com/revendix/revendix-api/internal/application/ledger"
	"github.com/revendix/revendix-api/internal/application/reports"
	"github.com/revendix/revendix-api/internal/application/sales"
	"github.com/revendix/revendix-api/internal/application/usecase"
	infraexcel "github.com/revendix/revendix-api/internal/infrastructure/excel"
	infrapdf "github.com/revendix/revendix-api/internal/infrastructure/pdf"
	"github.com/revendix/revendix-api/internal/infrastructure/postgres"
	httpRouter "github.com/revendix/revendix-api/internal/interfaces/http"
	"github.com/revendix/revendix-api/pkg/config"
	"github.com/revendix/revendix-api/pkg/logger"
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
	saleRepo := postgres.NewSaleRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	shipmentRepo := postgres.NewShipmentRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	ledgerUC := ledger.NewStockLedgerUseCase(txRunner)
	salesUC := sales.NewSalesUseCase(txRunner, ledgerUC, saleRepo, productRepo)
	productUC := usecase.NewProductUseCase(productRepo, shipmentRepo, movementRepo)
	shipmentUC := usecase.NewShipmentUseCase(shipmentRepo, txRunner)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	expenseUC := usecase.NewExpenseUseCase(expenseRepo, shipmentRepo)
	importUC := importer.NewImportUseCase(infraexcel.NewReader(), productRepo, shipmentRepo)
	salesReportUC := reports.NewSalesReportUseCase(saleRepo, productRepo, infraexcel.NewSalesReportWriter())

	// PDF: recibo de venta para el cliente final
	receiptGenerator := infrapdf.NewMarotoReceiptGenerator(cfg.App.Name)
	receiptUC := sales.NewReceiptUseCase(saleRepo, productRepo, receiptGenerator)

	authUC := auth.NewAuthUseCase(userRepo, cfg.Auth, auth.JWTConfig{
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

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Revendix API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:          authUC,
		ProductUC:       productUC,
		LedgerUC:        ledgerUC,
		ImportUC:        importUC,
		SalesUC:         salesUC,
		ReceiptUC:       receiptUC,
		SalesReportUC:   salesReportUC,
		ShipmentUC:      shipmentUC,
		CategoryUC:      categoryUC,
		SupplierUC:      supplierUC,
		ExpenseUC:       expenseUC,
		JWTSecret:       cfg.JWT.Secret,
		DefaultLanguage: cfg.App.DefaultLanguage,
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
