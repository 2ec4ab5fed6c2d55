package repository

import (
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// MovementRepository define el puerto de persistencia para el ledger de movimientos.
// Solo inserta y lee: las filas existentes nunca se actualizan ni se borran.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	// List devuelve movimientos ordenados del más reciente al más antiguo.
	// itemID vacío = todos los artículos; since nil = sin cota temporal.
	List(itemID string, since *time.Time, limit, offset int) ([]*entity.Movement, error)
	// OutboundTotalSince devuelve la suma de magnitudes OUTBOUND y el número total de
	// movimientos (de cualquier dirección) del artículo desde el instante dado.
	OutboundTotalSince(itemID string, since time.Time) (total int64, movements int, err error)
}
