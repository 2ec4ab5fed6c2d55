package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación sobre PostgreSQL del ledger append-only (usable con
// pool o tx). Solo INSERT y SELECT: las filas jamás se actualizan ni se borran.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create inserta un movimiento y devuelve en movement.ID la secuencia asignada.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	if movement.Actor == "" {
		movement.Actor = entity.DefaultActor
	}
	if movement.CreatedAt.IsZero() {
		movement.CreatedAt = time.Now()
	}
	query := `
		INSERT INTO movements (direction, item_id, quantity, reason, actor, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		movement.Direction, movement.ItemID, movement.Quantity,
		movement.Reason, movement.Actor, movement.CreatedAt,
	).Scan(&movement.ID)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// List lista movimientos del más reciente al más antiguo, opcionalmente acotados
// a un artículo y/o desde un instante.
func (r *MovementRepo) List(itemID string, since *time.Time, limit, offset int) ([]*entity.Movement, error) {
	query := `
		SELECT id, direction, item_id, quantity, reason, actor, created_at
		FROM movements WHERE true`
	var args []any
	pos := 1
	if itemID != "" {
		query += fmt.Sprintf(" AND item_id = $%d", pos)
		args = append(args, itemID)
		pos++
	}
	if since != nil {
		query += fmt.Sprintf(" AND created_at >= $%d", pos)
		args = append(args, *since)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.Direction, &m.ItemID, &m.Quantity, &m.Reason, &m.Actor, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// OutboundTotalSince suma las magnitudes OUTBOUND y cuenta todos los movimientos
// del artículo desde el instante dado, en una sola consulta.
func (r *MovementRepo) OutboundTotalSince(itemID string, since time.Time) (int64, int, error) {
	query := `
		SELECT
			COALESCE(SUM(quantity) FILTER (WHERE direction = 'OUTBOUND'), 0),
			COUNT(*)
		FROM movements
		WHERE item_id = $1 AND created_at >= $2`
	var total int64
	var movements int
	err := r.q.QueryRow(context.Background(), query, itemID, since).Scan(&total, &movements)
	if err != nil {
		return 0, 0, fmt.Errorf("outbound total: %w", err)
	}
	return total, movements, nil
}
