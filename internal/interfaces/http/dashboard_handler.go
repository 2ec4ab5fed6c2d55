package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
)

// topValueDefault tamaño del ranking del dashboard cuando no se indica n.
const topValueDefault = 5

// DashboardHandler expone los agregados de solo lectura del inventario.
type DashboardHandler struct {
	statsUC *usecase.StatsUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(statsUC *usecase.StatsUseCase) *DashboardHandler {
	return &DashboardHandler{statsUC: statsUC}
}

// Summary godoc
// @Summary      Resumen del inventario activo
// @Description  Conteos por estado derivado, valuación total, unidades totales y
//               distribución por categoría. Un inventario vacío responde agregados
//               en cero.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.StatsResponse
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	stats, err := h.statsUC.Summary()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(stats)
}

// TopValue godoc
// @Summary      Artículos de mayor valuación
// @Description  Top n por cantidad × costo de compra, descendente; empates por
//               nombre ascendente.
// @Tags         dashboard
// @Produce      json
// @Param        n  query  int  false  "Tamaño del ranking (5 por defecto)"
// @Success      200  {object}  dto.TopValueResponse
// @Router       /api/dashboard/top-value [get]
func (h *DashboardHandler) TopValue(c *fiber.Ctx) error {
	n := c.QueryInt("n", topValueDefault)
	top, err := h.statsUC.TopByValue(n)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(top)
}
