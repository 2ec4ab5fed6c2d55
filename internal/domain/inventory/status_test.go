package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/inventory"
)

// La frontera exacta del umbral cuenta como stock bajo: quantity == threshold → LOW_STOCK.
func TestClassify_FronteraDelUmbral(t *testing.T) {
	assert.Equal(t, entity.StatusLowStock, inventory.Classify(10, 10),
		"quantity igual al umbral debe ser LOW_STOCK, no OK")
	assert.Equal(t, entity.StatusOK, inventory.Classify(11, 10))
	assert.Equal(t, entity.StatusLowStock, inventory.Classify(1, 10))
}

// Cantidad cero siempre es OUT_OF_STOCK, sin importar el umbral.
func TestClassify_CeroGanaAlUmbral(t *testing.T) {
	assert.Equal(t, entity.StatusOutOfStock, inventory.Classify(0, 10))
	assert.Equal(t, entity.StatusOutOfStock, inventory.Classify(0, 0))
}

// Con umbral cero solo existen OUT_OF_STOCK y OK.
func TestClassify_UmbralCero(t *testing.T) {
	assert.Equal(t, entity.StatusOK, inventory.Classify(1, 0))
	assert.Equal(t, entity.StatusOutOfStock, inventory.Classify(0, 0))
}
