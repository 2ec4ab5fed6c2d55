package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/inventory"
)

func item(name, category string, qty, threshold int64, cost string) *entity.Item {
	return &entity.Item{
		Name:             name,
		Category:         category,
		Quantity:         qty,
		ReorderThreshold: threshold,
		PurchaseCost:     decimal.RequireFromString(cost),
		SaleCost:         decimal.Zero,
		UnitMeasure:      entity.UnitMeasureUnit,
		Active:           true,
	}
}

// Agregado sobre secuencia vacía: todo en cero, mapa vacío, sin error.
func TestAggregate_SecuenciaVacia(t *testing.T) {
	stats := inventory.Aggregate(nil)

	assert.Equal(t, 0, stats.TotalItems)
	assert.Equal(t, 0, stats.OutOfStock)
	assert.Equal(t, 0, stats.LowStock)
	assert.Equal(t, 0, stats.OK)
	assert.True(t, stats.TotalValuation.IsZero(), "valuación debe ser cero")
	assert.Zero(t, stats.TotalUnits)
	assert.Empty(t, stats.ByCategory)
}

func TestAggregate_ConteosValuacionYCategorias(t *testing.T) {
	items := []*entity.Item{
		item("Arroz Integral", "Granos", 50, 10, "1500"),
		item("Leche Descremada", "Lácteos", 0, 5, "800"),
		item("Aceite de Oliva", "Aceites", 3, 3, "3000"),
		item("Harina de Trigo", "Granos", 30, 8, "1200"),
	}

	stats := inventory.Aggregate(items)

	assert.Equal(t, 4, stats.TotalItems)
	assert.Equal(t, 1, stats.OutOfStock)
	assert.Equal(t, 1, stats.LowStock)
	assert.Equal(t, 2, stats.OK)
	assert.Equal(t, int64(83), stats.TotalUnits)
	// 50*1500 + 0*800 + 3*3000 + 30*1200 = 120000
	assert.True(t, stats.TotalValuation.Equal(decimal.NewFromInt(120000)),
		"valuación total esperada 120000, obtenida %s", stats.TotalValuation)
	assert.Equal(t, map[string]int{"Granos": 2, "Lácteos": 1, "Aceites": 1}, stats.ByCategory)
}

// Artículos sin categoría no aparecen en el mapa por categoría.
func TestAggregate_SinCategoria(t *testing.T) {
	stats := inventory.Aggregate([]*entity.Item{item("Suelto", "", 5, 0, "100")})
	assert.Equal(t, 1, stats.TotalItems)
	assert.Empty(t, stats.ByCategory)
}

func TestRankByValue_TopNDescendente(t *testing.T) {
	items := []*entity.Item{
		item("Atún en Lata", "Enlatados", 40, 12, "1500"), // 60000
		item("Arroz Integral", "Granos", 50, 10, "1500"),  // 75000
		item("Aceite de Oliva", "Aceites", 15, 3, "3000"), // 45000
	}

	top := inventory.RankByValue(items, 2)

	require.Len(t, top, 2)
	assert.Equal(t, "Arroz Integral", top[0].Name)
	assert.Equal(t, "Atún en Lata", top[1].Name)
}

// Empates en valuación se desempatan por nombre ascendente (resultado determinista).
func TestRankByValue_EmpatePorNombre(t *testing.T) {
	items := []*entity.Item{
		item("Zanahoria", "Verduras", 10, 0, "100"),
		item("Apio", "Verduras", 10, 0, "100"),
	}

	top := inventory.RankByValue(items, 2)

	require.Len(t, top, 2)
	assert.Equal(t, "Apio", top[0].Name)
	assert.Equal(t, "Zanahoria", top[1].Name)
}

func TestRankByValue_NMayorQueElConjunto(t *testing.T) {
	items := []*entity.Item{item("Único", "X", 1, 0, "10")}
	assert.Len(t, inventory.RankByValue(items, 5), 1)
	assert.Empty(t, inventory.RankByValue(items, 0))
}

// RankByValue no debe reordenar el slice del caller.
func TestRankByValue_NoMutaEntrada(t *testing.T) {
	items := []*entity.Item{
		item("Barato", "X", 1, 0, "1"),
		item("Caro", "X", 100, 0, "100"),
	}
	_ = inventory.RankByValue(items, 1)
	assert.Equal(t, "Barato", items[0].Name)
}
