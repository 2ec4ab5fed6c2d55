package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de medida soportados.
const (
	UnitMeasureUnit     = "UNIT"
	UnitMeasureKilogram = "KILOGRAM"
	UnitMeasureLiter    = "LITER"
	UnitMeasureMeter    = "METER"
)

// Estados derivados de stock. Nunca se persisten: se recalculan en cada lectura
// a partir de quantity y reorder_threshold.
const (
	StatusOutOfStock = "OUT_OF_STOCK"
	StatusLowStock   = "LOW_STOCK"
	StatusOK         = "OK"
)

// Item representa un artículo almacenado. Quantity solo se modifica vía el motor
// de ajustes (nunca directamente): quantity == cantidad inicial + suma firmada de
// los movimientos registrados contra el artículo.
type Item struct {
	ID               string
	Name             string
	Category         string
	Quantity         int64 // nunca negativo
	ReorderThreshold int64
	PurchaseCost     decimal.Decimal
	SaleCost         decimal.Decimal
	UnitMeasure      string // UNIT, KILOGRAM, LITER, METER
	Location         string
	Active           bool // baja lógica; las filas nunca se borran
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ValidUnitMeasure indica si el tipo de medida pertenece al catálogo.
func ValidUnitMeasure(m string) bool {
	switch m {
	case UnitMeasureUnit, UnitMeasureKilogram, UnitMeasureLiter, UnitMeasureMeter:
		return true
	}
	return false
}

// UnitMeasureDisplay devuelve la abreviatura para mostrar junto a cantidades.
func UnitMeasureDisplay(m string) string {
	switch m {
	case UnitMeasureKilogram:
		return "kg"
	case UnitMeasureLiter:
		return "lt"
	case UnitMeasureMeter:
		return "m"
	default:
		return "unid"
	}
}
