package ledger

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Garantiza que la actualización de cantidad y el registro del
// movimiento sean una sola unidad atómica: o ambos se confirman o ninguno.
//
// Ante un conflicto de escritura detectado por el almacén, la implementación puede
// reejecutar fn un número acotado de veces antes de devolver el error; fn debe ser
// por tanto segura de reintentar (relee el estado en cada ejecución).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.ItemRepository,
		movRepo repository.MovementRepository,
	) error) error
}
