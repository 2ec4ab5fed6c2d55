package usecase

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// ItemUseCase lecturas y actualizaciones descriptivas de artículos. La cantidad no
// se toca por aquí: cualquier cambio de stock pasa por el motor del ledger.
type ItemUseCase struct {
	repo repository.ItemRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo}
}

// GetByID obtiene un artículo por ID (también los inactivos, para consultas
// históricas). Devuelve nil si no existe.
func (uc *ItemUseCase) GetByID(id string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	resp := dto.ToItemResponse(item)
	return &resp, nil
}

// Update modifica los campos descriptivos de un artículo activo. Aunque el caller
// ya valida su entrada, aquí se revalida nombre no vacío y numéricos no negativos.
// Falla con ErrNotFound si el artículo no existe o está inactivo.
func (uc *ItemUseCase) Update(id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil || !item.Active {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		item.Name = name
	}
	if in.Category != nil {
		item.Category = strings.TrimSpace(*in.Category)
	}
	if in.ReorderThreshold != nil {
		if *in.ReorderThreshold < 0 {
			return nil, domain.ErrInvalidInput
		}
		item.ReorderThreshold = *in.ReorderThreshold
	}
	if in.PurchaseCost != nil {
		if in.PurchaseCost.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		item.PurchaseCost = *in.PurchaseCost
	}
	if in.SaleCost != nil {
		if in.SaleCost.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		item.SaleCost = *in.SaleCost
	}
	if in.UnitMeasure != nil {
		if !entity.ValidUnitMeasure(*in.UnitMeasure) {
			return nil, domain.ErrInvalidInput
		}
		item.UnitMeasure = *in.UnitMeasure
	}
	if in.Location != nil {
		item.Location = strings.TrimSpace(*in.Location)
	}
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	resp := dto.ToItemResponse(item)
	return &resp, nil
}

// SetActive cambia la visibilidad del artículo sin destruir su historial. Los
// inactivos desaparecen de listados, agregados y rankings, pero sus movimientos
// siguen siendo consultables.
func (uc *ItemUseCase) SetActive(id string, active bool) error {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return uc.repo.SetActive(id, active)
}

// List lista los artículos activos que cumplen todos los predicados del filtro,
// junto con las categorías existentes (para poblar los filtros del caller).
func (uc *ItemUseCase) List(filter repository.ItemFilter) (*dto.ItemListResponse, error) {
	switch filter.Status {
	case "", entity.StatusOutOfStock, entity.StatusLowStock, entity.StatusOK:
	default:
		return nil, domain.ErrInvalidInput
	}
	switch filter.Sort {
	case "", repository.SortByName, repository.SortByCreatedAt, repository.SortByQuantity:
	default:
		return nil, domain.ErrInvalidInput
	}
	items, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	categories, err := uc.repo.Categories()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, dto.ToItemResponse(item))
	}
	return &dto.ItemListResponse{Total: len(out), Items: out, Categories: categories}, nil
}
