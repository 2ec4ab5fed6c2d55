package entity

import "time"

// Direcciones de movimiento.
const (
	MovementInbound  = "INBOUND"  // entrada
	MovementOutbound = "OUTBOUND" // salida
)

// DefaultActor se registra cuando el caller no indica quién realizó el movimiento.
const DefaultActor = "sistema"

// Movement es un registro inmutable de un cambio de cantidad. Se inserta exactamente
// una vez al confirmar un ajuste (o la creación de un artículo con stock inicial) y
// nunca se actualiza ni se borra: el ledger completo permite reconstruir y verificar
// la cantidad actual de cada artículo.
type Movement struct {
	ID        int64 // secuencia asignada por la BD
	Direction string
	ItemID    string
	Quantity  int64 // magnitud, siempre > 0; el signo lo da Direction
	Reason    string
	Actor     string
	CreatedAt time.Time
}

// Signed devuelve la magnitud con signo según la dirección.
func (m *Movement) Signed() int64 {
	if m.Direction == MovementOutbound {
		return -m.Quantity
	}
	return m.Quantity
}

// ValidDirection indica si la dirección pertenece al catálogo.
func ValidDirection(d string) bool {
	return d == MovementInbound || d == MovementOutbound
}
