package usecase

import (
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/inventory"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// StatsUseCase agregados de solo lectura para el dashboard. Todo se deriva del par
// cantidad/umbral almacenado en el momento de la consulta; no hay estado cacheado
// que mantener sincronizado.
type StatsUseCase struct {
	repo repository.ItemRepository
}

// NewStatsUseCase construye el caso de uso.
func NewStatsUseCase(repo repository.ItemRepository) *StatsUseCase {
	return &StatsUseCase{repo: repo}
}

// Summary calcula las estadísticas del inventario activo. Un inventario vacío
// produce agregados en cero, nunca un error.
func (uc *StatsUseCase) Summary() (*dto.StatsResponse, error) {
	items, err := uc.repo.List(repository.ItemFilter{})
	if err != nil {
		return nil, err
	}
	stats := inventory.Aggregate(items)
	return &dto.StatsResponse{
		TotalItems:     stats.TotalItems,
		OutOfStock:     stats.OutOfStock,
		LowStock:       stats.LowStock,
		OK:             stats.OK,
		TotalValuation: stats.TotalValuation,
		TotalUnits:     stats.TotalUnits,
		ByCategory:     stats.ByCategory,
	}, nil
}

// TopByValue devuelve los n artículos activos con mayor valuación
// (cantidad × costo de compra), con empates por nombre ascendente.
func (uc *StatsUseCase) TopByValue(n int) (*dto.TopValueResponse, error) {
	items, err := uc.repo.List(repository.ItemFilter{})
	if err != nil {
		return nil, err
	}
	ranked := inventory.RankByValue(items, n)
	out := make([]dto.ItemResponse, 0, len(ranked))
	for _, item := range ranked {
		out = append(out, dto.ToItemResponse(item))
	}
	return &dto.TopValueResponse{Total: len(out), Items: out}, nil
}
