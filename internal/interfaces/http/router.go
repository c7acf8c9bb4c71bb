package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cocinacentral/ckms-api/internal/application/reports"
	"github.com/cocinacentral/ckms-api/internal/application/usecase"
	"github.com/cocinacentral/ckms-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ReportsSvc *reports.Service
	OrderUC    *usecase.OrderUseCase
	StoreUC    *usecase.StoreUseCase
	ProductUC  *usecase.ProductUseCase
	CategoryUC *usecase.CategoryUseCase
	Log        *logger.Logger
	JWTSecret  string
}

// Router registra las rutas de la API. Todo /api requiere Bearer Token; los
// reportes además exigen rol admin o manager.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	// Reportes (solo admin/manager)
	reportsGroup := api.Group("/reports", RequireRole("admin", "manager"))
	reportsHandler := NewReportsHandler(deps.ReportsSvc, deps.Log)
	reportsGroup.Get("/overview", reportsHandler.Overview)
	reportsGroup.Get("/orders", reportsHandler.Orders)
	reportsGroup.Get("/production", reportsHandler.Production)
	reportsGroup.Get("/inventory", reportsHandler.Inventory)
	reportsGroup.Get("/delivery", reportsHandler.Delivery)
	reportsGroup.Get("/export", reportsHandler.Export)

	// Pedidos (lectura, cualquier rol autenticado)
	orderHandler := NewOrderHandler(deps.OrderUC)
	api.Get("/orders", orderHandler.List)
	api.Get("/orders/:id", orderHandler.GetByID)

	// Catálogo (lectura, cualquier rol autenticado)
	catalogHandler := NewCatalogHandler(deps.StoreUC, deps.ProductUC, deps.CategoryUC)
	api.Get("/stores", catalogHandler.ListStores)
	api.Get("/products", catalogHandler.ListProducts)
	api.Get("/categories", catalogHandler.ListCategories)
}
