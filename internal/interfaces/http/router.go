package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/auth"
	"github.com/jhoicas/almacen-api/internal/application/ledger"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	LedgerUC    *ledger.LedgerUseCase
	DepletionUC *ledger.DepletionUseCase
	ItemUC      *usecase.ItemUseCase
	MovementUC  *usecase.MovementUseCase
	StatsUC     *usecase.StatsUseCase
	AuthUC      *auth.AuthUseCase
}

// Router registra las rutas de la API. Todas las rutas son públicas: el sistema
// registra usuarios y emite tokens pero no los exige en ninguna petición.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Items
	items := api.Group("/items")
	itemHandler := NewItemHandler(deps.LedgerUC, deps.ItemUC)
	items.Post("/", itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Patch("/:id/active", itemHandler.SetActive)

	// Inventario: ajustes y movimientos
	invGroup := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.LedgerUC, deps.MovementUC, deps.DepletionUC)
	invGroup.Post("/adjustments", inventoryHandler.Adjust)
	invGroup.Get("/movements", inventoryHandler.ListMovements)
	items.Get("/:id/depletion", inventoryHandler.Depletion)

	// Dashboard
	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.StatsUC)
	dashboard.Get("/summary", dashboardHandler.Summary)
	dashboard.Get("/top-value", dashboardHandler.TopValue)
}
