package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/revendix/revendix-api/internal/application/auth"
	"github.com/revendix/revendix-api/internal/application/importer"
	"github.com/revendix/revendix-api/internal/application/ledger"
	"github.com/revendix/revendix-api/internal/application/reports"
	"github.com/revendix/revendix-api/internal/application/sales"
	"github.com/revendix/revendix-api/internal/application/usecase"
	domauth "github.com/revendix/revendix-api/internal/domain/auth"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC          *auth.AuthUseCase
	ProductUC       *usecase.ProductUseCase
	LedgerUC        *ledger.StockLedgerUseCase
	ImportUC        *importer.ImportUseCase
	SalesUC         *sales.SalesUseCase
	ReceiptUC       *sales.ReceiptUseCase
	SalesReportUC   *reports.SalesReportUseCase
	ShipmentUC      *usecase.ShipmentUseCase
	CategoryUC      *usecase.CategoryUseCase
	SupplierUC      *usecase.SupplierUseCase
	ExpenseUC       *usecase.ExpenseUseCase
	JWTSecret       string
	DefaultLanguage string
}

// Router registra las rutas de la API. Cada ruta protegida declara el permiso
// que exige; la tabla rol->permisos vive en el dominio (internal/domain/auth).
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(LanguageMiddleware(deps.DefaultLanguage))

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products + stock
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.LedgerUC, deps.ImportUC)
	products.Post("/", RequirePermission(domauth.PermProductsManage), productHandler.Create)
	products.Get("/", RequirePermission(domauth.PermProductsView), productHandler.List)
	products.Post("/import", RequirePermission(domauth.PermProductsImport), productHandler.Import)
	products.Get("/:id", RequirePermission(domauth.PermProductsView), productHandler.GetByID)
	products.Put("/:id", RequirePermission(domauth.PermProductsManage), productHandler.Update)
	products.Delete("/:id", RequirePermission(domauth.PermProductsManage), productHandler.Delete)
	products.Get("/:id/movements", RequirePermission(domauth.PermStockView), productHandler.Movements)
	products.Post("/:id/adjust-stock", RequirePermission(domauth.PermStockAdjust), productHandler.AdjustStock)
	products.Post("/:id/reset-stock", RequirePermission(domauth.PermStockReset), productHandler.ResetStock)

	// Sales
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SalesUC, deps.ReceiptUC, deps.SalesReportUC)
	salesGroup.Post("/", RequirePermission(domauth.PermSalesCreate), saleHandler.Create)
	salesGroup.Get("/", RequirePermission(domauth.PermSalesView), saleHandler.List)
	salesGroup.Get("/export", RequirePermission(domauth.PermReportsExport), saleHandler.Export)
	salesGroup.Get("/:id", RequirePermission(domauth.PermSalesView), saleHandler.GetByID)
	salesGroup.Put("/:id", RequirePermission(domauth.PermSalesManage), saleHandler.Update)
	salesGroup.Delete("/:id", RequirePermission(domauth.PermSalesManage), saleHandler.Delete)
	salesGroup.Get("/:id/receipt", RequirePermission(domauth.PermSalesView), saleHandler.Receipt)

	// Shipments (arrivages)
	shipments := protected.Group("/shipments")
	shipmentHandler := NewShipmentHandler(deps.ShipmentUC)
	shipments.Post("/", RequirePermission(domauth.PermShipmentsManage), shipmentHandler.Create)
	shipments.Get("/", RequirePermission(domauth.PermShipmentsView), shipmentHandler.List)
	shipments.Get("/:id", RequirePermission(domauth.PermShipmentsView), shipmentHandler.GetByID)
	shipments.Put("/:id", RequirePermission(domauth.PermShipmentsManage), shipmentHandler.Update)
	shipments.Delete("/:id", RequirePermission(domauth.PermShipmentsManage), shipmentHandler.Delete)
	shipments.Post("/:id/items", RequirePermission(domauth.PermShipmentsReceive), shipmentHandler.ReceiveItems)

	// Categories
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", RequirePermission(domauth.PermCatalogManage), categoryHandler.Create)
	categories.Get("/", RequirePermission(domauth.PermProductsView), categoryHandler.List)
	categories.Get("/:id", RequirePermission(domauth.PermProductsView), categoryHandler.GetByID)
	categories.Put("/:id", RequirePermission(domauth.PermCatalogManage), categoryHandler.Update)
	categories.Delete("/:id", RequirePermission(domauth.PermCatalogManage), categoryHandler.Delete)

	// Suppliers
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", RequirePermission(domauth.PermCatalogManage), supplierHandler.Create)
	suppliers.Get("/", RequirePermission(domauth.PermProductsView), supplierHandler.List)
	suppliers.Get("/:id", RequirePermission(domauth.PermProductsView), supplierHandler.GetByID)
	suppliers.Put("/:id", RequirePermission(domauth.PermCatalogManage), supplierHandler.Update)
	suppliers.Delete("/:id", RequirePermission(domauth.PermCatalogManage), supplierHandler.Delete)

	// Expenses
	expenses := protected.Group("/expenses")
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses.Post("/", RequirePermission(domauth.PermExpensesManage), expenseHandler.Create)
	expenses.Get("/", RequirePermission(domauth.PermExpensesManage), expenseHandler.List)
	expenses.Get("/:id", RequirePermission(domauth.PermExpensesManage), expenseHandler.GetByID)
	expenses.Put("/:id", RequirePermission(domauth.PermExpensesManage), expenseHandler.Update)
	expenses.Delete("/:id", RequirePermission(domauth.PermExpensesManage), expenseHandler.Delete)
}
