package inventory

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// Stats agrega métricas sobre un conjunto de artículos ya filtrado por el caller.
type Stats struct {
	TotalItems     int
	OutOfStock     int
	LowStock       int
	OK             int
	TotalValuation decimal.Decimal // Σ quantity * purchase_cost
	TotalUnits     int64           // Σ quantity
	ByCategory     map[string]int
}

// Aggregate calcula las estadísticas de inventario sobre cualquier secuencia de
// artículos. Una secuencia vacía produce agregados en cero, nunca un error.
func Aggregate(items []*entity.Item) Stats {
	stats := Stats{
		TotalValuation: decimal.Zero,
		ByCategory:     make(map[string]int),
	}
	for _, item := range items {
		stats.TotalItems++
		switch ClassifyItem(item) {
		case entity.StatusOutOfStock:
			stats.OutOfStock++
		case entity.StatusLowStock:
			stats.LowStock++
		default:
			stats.OK++
		}
		stats.TotalValuation = stats.TotalValuation.Add(ItemValuation(item))
		stats.TotalUnits += item.Quantity
		if item.Category != "" {
			stats.ByCategory[item.Category]++
		}
	}
	return stats
}

// ItemValuation devuelve quantity * purchase_cost para un artículo.
func ItemValuation(item *entity.Item) decimal.Decimal {
	return decimal.NewFromInt(item.Quantity).Mul(item.PurchaseCost)
}

// RankByValue devuelve los n artículos con mayor valuación (quantity * purchase_cost)
// en orden descendente. Empates se resuelven por nombre ascendente para que el
// resultado sea determinista.
func RankByValue(items []*entity.Item, n int) []*entity.Item {
	if n <= 0 {
		return []*entity.Item{}
	}
	ranked := make([]*entity.Item, len(items))
	copy(ranked, items)
	sort.SliceStable(ranked, func(i, j int) bool {
		vi, vj := ItemValuation(ranked[i]), ItemValuation(ranked[j])
		if !vi.Equal(vj) {
			return vi.GreaterThan(vj)
		}
		return ranked[i].Name < ranked[j].Name
	})
	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}
