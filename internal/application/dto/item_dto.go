package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/inventory"
)

// CreateItemRequest body para POST /api/items.
type CreateItemRequest struct {
	Name             string          `json:"name"`
	Category         string          `json:"category,omitempty"`
	InitialQuantity  int64           `json:"initial_quantity,omitempty"`
	ReorderThreshold int64           `json:"reorder_threshold,omitempty"`
	PurchaseCost     decimal.Decimal `json:"purchase_cost,omitempty"`
	SaleCost         decimal.Decimal `json:"sale_cost,omitempty"`
	UnitMeasure      string          `json:"unit_measure,omitempty"`
	Location         string          `json:"location,omitempty"`
	Actor            string          `json:"actor,omitempty"`
}

// UpdateItemRequest body para PUT /api/items/:id. Solo campos descriptivos; la
// cantidad jamás se actualiza por esta vía.
type UpdateItemRequest struct {
	Name             *string          `json:"name,omitempty"`
	Category         *string          `json:"category,omitempty"`
	ReorderThreshold *int64           `json:"reorder_threshold,omitempty"`
	PurchaseCost     *decimal.Decimal `json:"purchase_cost,omitempty"`
	SaleCost         *decimal.Decimal `json:"sale_cost,omitempty"`
	UnitMeasure      *string          `json:"unit_measure,omitempty"`
	Location         *string          `json:"location,omitempty"`
}

// SetActiveRequest body para PATCH /api/items/:id/active.
type SetActiveRequest struct {
	Active bool `json:"active"`
}

// ItemResponse representación de un artículo con su estado derivado y valuación.
type ItemResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Category         string          `json:"category,omitempty"`
	Quantity         int64           `json:"quantity"`
	ReorderThreshold int64           `json:"reorder_threshold"`
	PurchaseCost     decimal.Decimal `json:"purchase_cost"`
	SaleCost         decimal.Decimal `json:"sale_cost"`
	UnitMeasure      string          `json:"unit_measure"`
	MeasureDisplay   string          `json:"measure_display"`
	Location         string          `json:"location,omitempty"`
	Active           bool            `json:"active"`
	Status           string          `json:"status"` // derivado en cada lectura
	Valuation        decimal.Decimal `json:"valuation"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// ItemListResponse listado de artículos.
type ItemListResponse struct {
	Total      int            `json:"total"`
	Items      []ItemResponse `json:"items"`
	Categories []string       `json:"categories,omitempty"`
}

// ToItemResponse convierte la entidad a su representación externa, recalculando
// el estado derivado (nunca se lee de algo persistido).
func ToItemResponse(item *entity.Item) ItemResponse {
	return ItemResponse{
		ID:               item.ID,
		Name:             item.Name,
		Category:         item.Category,
		Quantity:         item.Quantity,
		ReorderThreshold: item.ReorderThreshold,
		PurchaseCost:     item.PurchaseCost,
		SaleCost:         item.SaleCost,
		UnitMeasure:      item.UnitMeasure,
		MeasureDisplay:   entity.UnitMeasureDisplay(item.UnitMeasure),
		Location:         item.Location,
		Active:           item.Active,
		Status:           inventory.ClassifyItem(item),
		Valuation:        inventory.ItemValuation(item),
		CreatedAt:        item.CreatedAt,
		UpdatedAt:        item.UpdatedAt,
	}
}
