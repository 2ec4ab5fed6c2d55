package usecase

import (
	"time"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// MovementUseCase consultas de solo lectura sobre el ledger de movimientos.
type MovementUseCase struct {
	repo repository.MovementRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(repo repository.MovementRepository) *MovementUseCase {
	return &MovementUseCase{repo: repo}
}

// List devuelve movimientos del más reciente al más antiguo, opcionalmente
// limitados a un artículo y/o a partir de un instante. Incluye el historial de
// artículos inactivos: el ledger nunca se poda.
func (uc *MovementUseCase) List(itemID string, since *time.Time, page dto.PageRequest) (*dto.MovementListResponse, error) {
	page.DefaultPage()
	movements, err := uc.repo.List(itemID, since, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, dto.ToMovementResponse(m))
	}
	return &dto.MovementListResponse{Total: len(out), Movements: out}, nil
}
