package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/ledger"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain"
)

// InventoryHandler maneja ajustes de stock y consultas sobre el ledger.
type InventoryHandler struct {
	ledgerUC    *ledger.LedgerUseCase
	movementUC  *usecase.MovementUseCase
	depletionUC *ledger.DepletionUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(ledgerUC *ledger.LedgerUseCase, movementUC *usecase.MovementUseCase, depletionUC *ledger.DepletionUseCase) *InventoryHandler {
	return &InventoryHandler{ledgerUC: ledgerUC, movementUC: movementUC, depletionUC: depletionUC}
}

// Adjust godoc
// @Summary      Ajustar la cantidad de un artículo
// @Description  Entrada o salida atómica: actualización de cantidad y registro del
//               movimiento comparten transacción. Una salida mayor al stock vigente
//               devuelve 409 con la cantidad actual y no escribe nada.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustQuantityRequest  true  "item_id, direction (INBOUND|OUTBOUND), quantity > 0, reason, actor"
// @Success      200  {object}  dto.AdjustQuantityResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.AdjustQuantityResponse
// @Router       /api/inventory/adjustments [post]
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	qty, err := h.ledgerUC.AdjustQuantity(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "artículo no encontrado o inactivo"})
		}
		if errors.Is(err, domain.ErrInsufficientStock) {
			// qty trae la cantidad vigente para que el caller pueda mostrarla.
			return c.Status(fiber.StatusConflict).JSON(dto.AdjustQuantityResponse{
				ItemID: in.ItemID, Quantity: qty, Status: "INSUFFICIENT_STOCK",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.AdjustQuantityResponse{ItemID: in.ItemID, Quantity: qty, Status: "OK"})
}

// ListMovements godoc
// @Summary      Listar movimientos del ledger
// @Description  Del más reciente al más antiguo. Incluye el historial de artículos
//               inactivos: el ledger nunca se poda.
// @Tags         inventory
// @Produce      json
// @Param        item_id  query  string  false  "Limitar a un artículo"
// @Param        since    query  string  false  "RFC 3339; solo movimientos desde ese instante"
// @Param        limit    query  int     false  "Tamaño de página (50 por defecto)"
// @Param        offset   query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.MovementListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	var since *time.Time
	if raw := c.Query("since"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "since debe ser RFC 3339"})
		}
		since = &parsed
	}
	page := dto.PageRequest{Limit: c.QueryInt("limit"), Offset: c.QueryInt("offset")}
	list, err := h.movementUC.List(c.Query("item_id"), since, page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// Depletion godoc
// @Summary      Estimar días hasta agotar stock
// @Description  Extrapolación lineal de las salidas recientes: una estimación
//               orientativa, no una cifra garantizada.
// @Tags         inventory
// @Produce      json
// @Param        id           path   string  true   "ID del artículo"
// @Param        window_days  query  int     false  "Ventana de consulta en días (30 por defecto)"
// @Success      200  {object}  dto.DepletionEstimateResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id}/depletion [get]
func (h *InventoryHandler) Depletion(c *fiber.Ctx) error {
	windowDays := c.QueryInt("window_days", ledger.DefaultDepletionWindowDays)
	est, err := h.depletionUC.Estimate(c.Context(), c.Params("id"), windowDays)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "window_days debe ser mayor que cero"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "artículo no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(est)
}
