package ledger

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// Motivo registrado para el movimiento inicial de un artículo con stock de arranque.
const creationReason = "item created"

// LedgerUseCase es el único camino por el que cambia la cantidad de un artículo.
// Cada cambio actualiza la fila del artículo y agrega el movimiento correspondiente
// en la misma transacción, de modo que en todo momento se cumple:
//
//	quantity == cantidad inicial + Σ(entradas) − Σ(salidas)
//
// Ningún otro código escribe quantity.
type LedgerUseCase struct {
	txRunner TxRunner
}

// NewLedgerUseCase construye el motor del ledger.
func NewLedgerUseCase(txRunner TxRunner) *LedgerUseCase {
	return &LedgerUseCase{txRunner: txRunner}
}

// AddItem crea un artículo activo. Si la cantidad inicial es mayor que cero, registra
// un movimiento INBOUND por esa magnitud en la misma transacción, de forma que el
// invariante del ledger se cumple desde la creación.
func (uc *LedgerUseCase) AddItem(ctx context.Context, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.InitialQuantity < 0 || in.ReorderThreshold < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.PurchaseCost.LessThan(decimal.Zero) || in.SaleCost.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	measure := in.UnitMeasure
	if measure == "" {
		measure = entity.UnitMeasureUnit
	}
	if !entity.ValidUnitMeasure(measure) {
		return nil, domain.ErrInvalidInput
	}
	actor := in.Actor
	if actor == "" {
		actor = entity.DefaultActor
	}

	now := time.Now()
	item := &entity.Item{
		ID:               uuid.New().String(),
		Name:             name,
		Category:         strings.TrimSpace(in.Category),
		Quantity:         in.InitialQuantity,
		ReorderThreshold: in.ReorderThreshold,
		PurchaseCost:     in.PurchaseCost,
		SaleCost:         in.SaleCost,
		UnitMeasure:      measure,
		Location:         strings.TrimSpace(in.Location),
		Active:           true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		movRepo repository.MovementRepository,
	) error {
		if err := itemRepo.Create(item); err != nil {
			return err
		}
		if item.Quantity == 0 {
			return nil
		}
		return movRepo.Create(&entity.Movement{
			Direction: entity.MovementInbound,
			ItemID:    item.ID,
			Quantity:  item.Quantity,
			Reason:    creationReason,
			Actor:     actor,
			CreatedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}
	resp := dto.ToItemResponse(item)
	return &resp, nil
}

// AdjustQuantity aplica una entrada o salida sobre un artículo activo y devuelve la
// cantidad resultante. La secuencia leer-calcular-escribir-registrar corre dentro de
// una transacción con la fila del artículo bloqueada (SELECT FOR UPDATE), así que dos
// ajustes concurrentes sobre el mismo artículo se serializan y ajustes sobre
// artículos distintos no se bloquean entre sí.
//
// Una salida mayor al stock actual devuelve domain.ErrInsufficientStock junto con la
// cantidad vigente, sin escribir nada.
func (uc *LedgerUseCase) AdjustQuantity(ctx context.Context, in dto.AdjustQuantityRequest) (int64, error) {
	if in.ItemID == "" || !entity.ValidDirection(in.Direction) {
		return 0, domain.ErrInvalidInput
	}
	if in.Quantity <= 0 {
		return 0, domain.ErrInvalidInput
	}
	actor := in.Actor
	if actor == "" {
		actor = entity.DefaultActor
	}

	var resulting int64
	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		movRepo repository.MovementRepository,
	) error {
		item, err := itemRepo.GetActiveForUpdate(in.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			// Inexistente o inactivo: los artículos dados de baja conservan su
			// historial pero no aceptan ajustes nuevos.
			return domain.ErrNotFound
		}

		newQty := item.Quantity + in.Quantity
		if in.Direction == entity.MovementOutbound {
			if item.Quantity < in.Quantity {
				resulting = item.Quantity
				return domain.ErrInsufficientStock
			}
			newQty = item.Quantity - in.Quantity
		}

		if err := itemRepo.UpdateQuantity(item.ID, newQty); err != nil {
			return err
		}
		if err := movRepo.Create(&entity.Movement{
			Direction: in.Direction,
			ItemID:    item.ID,
			Quantity:  in.Quantity,
			Reason:    in.Reason,
			Actor:     actor,
			CreatedAt: time.Now(),
		}); err != nil {
			return err
		}
		resulting = newQty
		return nil
	})
	return resulting, err
}
