package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Sentencias idempotentes de creación del esquema. Los artículos nunca se borran
// físicamente (baja lógica con active); los movimientos son append-only y su FK
// garantiza que siempre referencien un artículo existente.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS items (
		id                UUID PRIMARY KEY,
		name              TEXT NOT NULL UNIQUE,
		category          TEXT NOT NULL DEFAULT '',
		quantity          BIGINT NOT NULL DEFAULT 0 CHECK (quantity >= 0),
		reorder_threshold BIGINT NOT NULL DEFAULT 0 CHECK (reorder_threshold >= 0),
		purchase_cost     NUMERIC(14,4) NOT NULL DEFAULT 0 CHECK (purchase_cost >= 0),
		sale_cost         NUMERIC(14,4) NOT NULL DEFAULT 0 CHECK (sale_cost >= 0),
		unit_measure      TEXT NOT NULL DEFAULT 'UNIT',
		location          TEXT NOT NULL DEFAULT '',
		active            BOOLEAN NOT NULL DEFAULT TRUE,
		created_at        TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at        TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS movements (
		id         BIGSERIAL PRIMARY KEY,
		direction  TEXT NOT NULL CHECK (direction IN ('INBOUND', 'OUTBOUND')),
		item_id    UUID NOT NULL REFERENCES items (id),
		quantity   BIGINT NOT NULL CHECK (quantity > 0),
		reason     TEXT NOT NULL DEFAULT '',
		actor      TEXT NOT NULL DEFAULT 'sistema',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_movements_item_created
		ON movements (item_id, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS users (
		id            UUID PRIMARY KEY,
		username      TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		name          TEXT NOT NULL,
		role          TEXT NOT NULL DEFAULT 'USUARIO',
		active        BOOLEAN NOT NULL DEFAULT TRUE,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// Migrate crea las tablas si no existen. Seguro de ejecutar en cada arranque.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrar esquema: %w", err)
		}
	}
	return nil
}
