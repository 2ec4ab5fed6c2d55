package ledger

import (
	"context"
	"time"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/inventory"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// DefaultDepletionWindowDays es la ventana de consulta histórica cuando el caller
// no indica una (el sistema original usaba 30 días fijos).
const DefaultDepletionWindowDays = 30

// DepletionUseCase proyecta en cuántos días se agota el stock de un artículo,
// extrapolando linealmente las salidas recientes. Es una estimación orientativa
// sin objetivo de precisión, no una cifra garantizada.
type DepletionUseCase struct {
	itemRepo repository.ItemRepository
	movRepo  repository.MovementRepository
}

// NewDepletionUseCase construye el caso de uso.
func NewDepletionUseCase(itemRepo repository.ItemRepository, movRepo repository.MovementRepository) *DepletionUseCase {
	return &DepletionUseCase{itemRepo: itemRepo, movRepo: movRepo}
}

// Estimate calcula la proyección sobre la ventana [ahora − windowDays, ahora].
// windowDays debe ser > 0. Sin movimientos en la ventana el estado es NO_DATA;
// con movimientos pero sin salidas, UNBOUNDED.
func (uc *DepletionUseCase) Estimate(ctx context.Context, itemID string, windowDays int) (*dto.DepletionEstimateResponse, error) {
	if itemID == "" || windowDays <= 0 {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	since := time.Now().AddDate(0, 0, -windowDays)
	total, movements, err := uc.movRepo.OutboundTotalSince(itemID, since)
	if err != nil {
		return nil, err
	}

	est := inventory.EstimateDepletion(item.Quantity, total, movements, windowDays)
	return &dto.DepletionEstimateResponse{
		ItemID:     itemID,
		State:      est.State,
		Days:       est.Days,
		DailyRate:  est.DailyRate,
		WindowDays: est.WindowDays,
	}, nil
}
