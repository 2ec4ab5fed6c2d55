package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// Campos de ordenamiento aceptados por ItemFilter.Sort.
const (
	SortByName      = "name"
	SortByCreatedAt = "created_at"
	SortByQuantity  = "quantity"
)

// ItemFilter es una conjunción de predicados para listar artículos activos.
// Status filtra sobre la clase derivada (OUT_OF_STOCK, LOW_STOCK, OK); Query es
// búsqueda de subcadena sin distinción de mayúsculas sobre nombre, categoría y
// ubicación. Sort vacío ordena por nombre ascendente.
type ItemFilter struct {
	Category string
	Status   string
	Query    string
	Sort     string
}

// ItemRepository define el puerto de persistencia para Item (DIP).
// Quantity nunca se escribe por Update: solo UpdateQuantity, y únicamente desde el
// motor de ajustes dentro de una transacción.
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	// GetActiveForUpdate bloquea la fila para update (SELECT FOR UPDATE); devuelve
	// nil si el artículo no existe o está inactivo. Usar solo dentro de una tx.
	GetActiveForUpdate(id string) (*entity.Item, error)
	Update(item *entity.Item) error
	UpdateQuantity(id string, quantity int64) error
	SetActive(id string, active bool) error
	List(filter ItemFilter) ([]*entity.Item, error)
	Categories() ([]string, error)
}
