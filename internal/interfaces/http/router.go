package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/auth"
	appinv "github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/application/sales"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ProductUC   *usecase.ProductUseCase
	AgencyUC    *usecase.AgencyUseCase
	WarehouseUC *usecase.WarehouseUseCase
	ClientUC    *usecase.ClientUseCase
	SupplierUC  *usecase.SupplierUseCase
	StockUC     *usecase.StockUseCase
	MovementUC  *appinv.RegisterMovementUseCase
	EntryUC     *appinv.EntryUseCase
	OutputUC    *appinv.OutputUseCase
	PurchaseUC  *sales.PurchaseUseCase
	SaleUC      *sales.SaleUseCase
	PaymentUC   *sales.PaymentUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	admin := RequireRole(entity.RoleAdministrador)
	almacen := RequireRole(entity.RoleAlmacenero, entity.RoleAdministrador)
	venta := RequireRole(entity.RoleVendedor, entity.RoleAdministrador)
	caja := RequireRole(entity.RoleCajero, entity.RoleAdministrador)

	// Products (protegido; escritura solo administrador)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", admin, productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", admin, productHandler.Update)

	// Agencies (protegido; escritura solo administrador)
	agencies := protected.Group("/agencies")
	agencyHandler := NewAgencyHandler(deps.AgencyUC)
	agencies.Post("/", admin, agencyHandler.Create)
	agencies.Get("/", agencyHandler.List)
	agencies.Get("/:id", agencyHandler.GetByID)
	agencies.Put("/:id", admin, agencyHandler.Update)

	// Warehouses (protegido; escritura solo administrador)
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", admin, warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Put("/:id", admin, warehouseHandler.Update)

	// Clients (protegido)
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)

	// Suppliers (protegido)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)

	// Stock y movimientos (protegido; movimientos manuales solo almacén)
	stock := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC, deps.MovementUC)
	stock.Post("/movements", almacen, stockHandler.RegisterMovement)
	stock.Put("/config", admin, stockHandler.Configure)
	stock.Get("/below-minimum", stockHandler.ListBelowMinimum)
	stock.Get("/warehouse/:warehouseId", stockHandler.ListByWarehouse)
	stock.Get("/:productId/:warehouseId", stockHandler.Get)

	// Entries (protegido, almacén)
	entries := protected.Group("/entries", almacen)
	entryHandler := NewEntryHandler(deps.EntryUC)
	entries.Post("/", entryHandler.Create)
	entries.Get("/", entryHandler.List)
	entries.Get("/:id", entryHandler.GetByID)
	entries.Put("/:id", entryHandler.Update)

	// Outputs (protegido, almacén)
	outputs := protected.Group("/outputs", almacen)
	outputHandler := NewOutputHandler(deps.OutputUC)
	outputs.Post("/", outputHandler.Create)
	outputs.Get("/", outputHandler.List)
	outputs.Get("/:id", outputHandler.GetByID)
	outputs.Put("/:id", outputHandler.Update)

	// Purchases (protegido, almacén)
	purchases := protected.Group("/purchases", almacen)
	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC)
	purchases.Post("/", purchaseHandler.Create)
	purchases.Get("/", purchaseHandler.List)
	purchases.Get("/:id", purchaseHandler.GetByID)
	purchases.Put("/:id", purchaseHandler.Update)

	// Sales (protegido, ventas)
	salesGroup := protected.Group("/sales", venta)
	saleHandler := NewSaleHandler(deps.SaleUC)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Put("/:id", saleHandler.Update)
	salesGroup.Post("/:id/confirm", saleHandler.Confirm)

	// Payments (protegido, caja)
	payments := protected.Group("/payments", caja)
	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	payments.Post("/", paymentHandler.Create)
	payments.Get("/", paymentHandler.List)
	payments.Put("/:id", paymentHandler.Update)
	payments.Get("/transaction/:transactionId", paymentHandler.ListByTransaction)
}
