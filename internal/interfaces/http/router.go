package http

import (
	"github.com/gofiber/fiber/v2"
	apppromo "github.com/jhoicas/Compras-api/internal/application/promo"
	apppurchasing "github.com/jhoicas/Compras-api/internal/application/purchasing"
	"github.com/jhoicas/Compras-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC     *usecase.ProductUseCase
	SupplierUC    *usecase.SupplierUseCase
	OrderUC       *apppurchasing.OrderUseCase
	RecordReceipt *apppurchasing.RecordReceiptUseCase
	PeriodUC      *apppromo.PeriodUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Products y variantes
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/:id/variants", productHandler.CreateVariant)
	products.Get("/:id/variants", productHandler.ListVariants)

	// Suppliers
	suppliers := api.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)

	// Purchase orders
	orders := api.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Put("/:id/lines", orderHandler.ReplaceLines)
	orders.Post("/:id/status", orderHandler.Transition)
	orders.Delete("/:id", orderHandler.Delete)

	// Receipts anidadas bajo el pedido
	receiptHandler := NewReceiptHandler(deps.RecordReceipt)
	orders.Post("/:id/receipts", receiptHandler.Record)
	orders.Get("/:id/receipts", receiptHandler.ListByOrder)

	// Discount periods
	periods := api.Group("/discount-periods")
	periodHandler := NewPeriodHandler(deps.PeriodUC)
	periods.Post("/", periodHandler.Create)
	periods.Get("/", periodHandler.List)
	periods.Get("/:id", periodHandler.GetByID)
}
