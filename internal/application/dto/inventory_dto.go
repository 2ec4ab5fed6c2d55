package dto

import (
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// AdjustQuantityRequest body para POST /api/inventory/adjustments.
type AdjustQuantityRequest struct {
	ItemID    string `json:"item_id"`
	Direction string `json:"direction"` // INBOUND | OUTBOUND
	Quantity  int64  `json:"quantity"`  // magnitud, > 0
	Reason    string `json:"reason,omitempty"`
	Actor     string `json:"actor,omitempty"`
}

// AdjustQuantityResponse cantidad resultante tras aplicar el ajuste.
type AdjustQuantityResponse struct {
	ItemID   string `json:"item_id"`
	Quantity int64  `json:"quantity"`
	Status   string `json:"status"`
}

// MovementResponse representación de una fila del ledger.
type MovementResponse struct {
	ID        int64     `json:"id"`
	Direction string    `json:"direction"`
	ItemID    string    `json:"item_id"`
	Quantity  int64     `json:"quantity"`
	Reason    string    `json:"reason,omitempty"`
	Actor     string    `json:"actor"`
	CreatedAt time.Time `json:"created_at"`
}

// MovementListResponse listado de movimientos (del más reciente al más antiguo).
type MovementListResponse struct {
	Total     int                `json:"total"`
	Movements []MovementResponse `json:"movements"`
}

// DepletionEstimateResponse proyección heurística de agotamiento. Days solo es
// válido cuando State == ESTIMATED; puede ser fraccionario.
type DepletionEstimateResponse struct {
	ItemID     string  `json:"item_id"`
	State      string  `json:"state"` // NO_DATA | UNBOUNDED | ESTIMATED
	Days       float64 `json:"days,omitempty"`
	DailyRate  float64 `json:"daily_rate,omitempty"`
	WindowDays int     `json:"window_days"`
}

// ToMovementResponse convierte la entidad a su representación externa.
func ToMovementResponse(m *entity.Movement) MovementResponse {
	return MovementResponse{
		ID:        m.ID,
		Direction: m.Direction,
		ItemID:    m.ItemID,
		Quantity:  m.Quantity,
		Reason:    m.Reason,
		Actor:     m.Actor,
		CreatedAt: m.CreatedAt,
	}
}
