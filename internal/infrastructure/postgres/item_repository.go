package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

const itemColumns = `id, name, category, quantity, reorder_threshold, purchase_cost, sale_cost, unit_measure, location, active, created_at, updated_at`

// statusCase deriva la clase de stock en la propia consulta; el estado nunca se
// persiste, se recalcula fila a fila en cada lectura.
const statusCase = `CASE
	WHEN quantity = 0 THEN 'OUT_OF_STOCK'
	WHEN quantity <= reorder_threshold THEN 'LOW_STOCK'
	ELSE 'OK'
END`

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de persistencia para artículos. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Create persiste un artículo nuevo.
func (r *ItemRepo) Create(item *entity.Item) error {
	query := `
		INSERT INTO items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Category, item.Quantity, item.ReorderThreshold,
		item.PurchaseCost, item.SaleCost, item.UnitMeasure, item.Location,
		item.Active, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un artículo por ID, activo o no (los inactivos siguen siendo
// consultables para historial).
func (r *ItemRepo) GetByID(id string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`
	item, err := r.scanOne(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	return item, nil
}

// GetActiveForUpdate obtiene un artículo activo y bloquea su fila (SELECT FOR
// UPDATE) hasta el fin de la transacción: dos ajustes concurrentes sobre el mismo
// artículo se serializan aquí; artículos distintos no se bloquean entre sí.
// Devuelve nil si el artículo no existe o está inactivo.
func (r *ItemRepo) GetActiveForUpdate(id string) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1 AND active FOR UPDATE`
	item, err := r.scanOne(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get item for update: %w", err)
	}
	return item, nil
}

// Update actualiza los campos descriptivos de un artículo activo. Nunca escribe
// quantity: la cantidad solo cambia vía UpdateQuantity dentro del motor de ajustes.
// El predicado active va en el UPDATE mismo: si el artículo fue dado de baja entre
// la lectura del caller y esta escritura, no se modifica nada y se devuelve
// ErrNotFound.
func (r *ItemRepo) Update(item *entity.Item) error {
	query := `
		UPDATE items
		SET name = $2, category = $3, reorder_threshold = $4, purchase_cost = $5,
		    sale_cost = $6, unit_measure = $7, location = $8, updated_at = $9
		WHERE id = $1 AND active`
	tag, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Category, item.ReorderThreshold,
		item.PurchaseCost, item.SaleCost, item.UnitMeasure, item.Location, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateQuantity escribe la cantidad calculada por el motor de ajustes (única vía).
func (r *ItemRepo) UpdateQuantity(id string, quantity int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE items SET quantity = $2, updated_at = now() WHERE id = $1`,
		id, quantity,
	)
	if err != nil {
		return fmt.Errorf("update item quantity: %w", err)
	}
	return nil
}

// SetActive cambia la visibilidad sin destruir historial. Devuelve ErrNotFound si
// el artículo no existe.
func (r *ItemRepo) SetActive(id string, active bool) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE items SET active = $2, updated_at = now() WHERE id = $1`,
		id, active,
	)
	if err != nil {
		return fmt.Errorf("set item active: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista artículos activos aplicando la conjunción de predicados del filtro.
// Orden por nombre ascendente salvo que el filtro lo sobreescriba.
func (r *ItemRepo) List(filter repository.ItemFilter) ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE active`
	var args []any
	pos := 1
	if filter.Category != "" {
		query += fmt.Sprintf(" AND category = $%d", pos)
		args = append(args, filter.Category)
		pos++
	}
	if filter.Status != "" {
		query += fmt.Sprintf(" AND %s = $%d", statusCase, pos)
		args = append(args, filter.Status)
		pos++
	}
	if filter.Query != "" {
		query += fmt.Sprintf(" AND (name ILIKE $%d OR category ILIKE $%d OR location ILIKE $%d)", pos, pos, pos)
		args = append(args, "%"+escapeLike(filter.Query)+"%")
		pos++
	}
	switch filter.Sort {
	case repository.SortByCreatedAt:
		query += " ORDER BY created_at DESC"
	case repository.SortByQuantity:
		query += " ORDER BY quantity ASC, name ASC"
	default:
		query += " ORDER BY name ASC"
	}

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	var list []*entity.Item
	for rows.Next() {
		var item entity.Item
		if err := scanItem(rows, &item); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &item)
	}
	return list, rows.Err()
}

// Categories devuelve las categorías distintas de los artículos activos.
func (r *ItemRepo) Categories() ([]string, error) {
	query := `
		SELECT DISTINCT category FROM items
		WHERE active AND category <> ''
		ORDER BY category`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// escapeLike neutraliza los comodines de LIKE/ILIKE para que la búsqueda del
// filtro sea siempre de subcadena literal ('%' y '_' dejan de ser patrones).
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (r *ItemRepo) scanOne(row pgx.Row) (*entity.Item, error) {
	var item entity.Item
	if err := scanItem(row, &item); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func scanItem(row pgx.Row, item *entity.Item) error {
	return row.Scan(
		&item.ID, &item.Name, &item.Category, &item.Quantity, &item.ReorderThreshold,
		&item.PurchaseCost, &item.SaleCost, &item.UnitMeasure, &item.Location,
		&item.Active, &item.CreatedAt, &item.UpdatedAt,
	)
}
