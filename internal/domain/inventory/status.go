package inventory

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// Classify deriva el estado de stock a partir de cantidad y umbral (servicio de dominio).
// El chequeo de cero precede al de umbral: quantity=0 siempre es OUT_OF_STOCK,
// aunque el umbral también sea cero.
func Classify(quantity, threshold int64) string {
	switch {
	case quantity == 0:
		return entity.StatusOutOfStock
	case quantity <= threshold:
		return entity.StatusLowStock
	default:
		return entity.StatusOK
	}
}

// ClassifyItem deriva el estado de un artículo. Se recalcula en cada lectura,
// nunca se cachea ni se persiste.
func ClassifyItem(item *entity.Item) string {
	return Classify(item.Quantity, item.ReorderThreshold)
}
