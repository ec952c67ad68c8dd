package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artsiders/next-stock/internal/application/stock"
	"github.com/artsiders/next-stock/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC    *usecase.ProductUseCase
	CategoryUC   *usecase.CategoryUseCase
	SupplierUC   *usecase.SupplierUseCase
	MovementUC   *stock.MovementUseCase
	StatisticsUC *usecase.StatisticsUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Movimientos de stock (el ledger)
	movements := api.Group("/stockmovements")
	movementHandler := NewMovementHandler(deps.MovementUC)
	movements.Post("/", movementHandler.Create)
	movements.Get("/", movementHandler.List)
	movements.Get("/:id", movementHandler.GetByID)
	movements.Delete("/:id", movementHandler.Delete)

	// Recalcular el stock cacheado de un producto desde su historial
	products.Post("/:id/recompute", movementHandler.Recompute)

	// Categories
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Suppliers
	suppliers := api.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Statistics (tablero)
	statistics := api.Group("/statistics")
	statisticsHandler := NewStatisticsHandler(deps.StatisticsUC)
	statistics.Get("/summary", statisticsHandler.Summary)
	statistics.Get("/lowstock", statisticsHandler.LowStock)
	statistics.Get("/value", statisticsHandler.StockValue)
	statistics.Get("/categories", statisticsHandler.Categories)
	statistics.Get("/movements", statisticsHandler.Movements)
}
