// seed carga un catálogo de productos de ejemplo a través del caso de uso del
// ledger, de modo que cada producto queda con su movimiento inicial registrado.
//
// Uso: go run ./cmd/seed
// Lee la misma configuración que cmd/api (DATABASE_URL o DB_*).
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/ledger"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/infrastructure/postgres"
	"github.com/jhoicas/almacen-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		fmt.Fprintf(os.Stderr, "migración de esquema: %v\n", err)
		os.Exit(1)
	}

	uc := ledger.NewLedgerUseCase(postgres.NewTxRunner(pool))

	seeds := []dto.CreateItemRequest{
		{
			Name:             "Arroz Integral",
			Category:         "Granos",
			InitialQuantity:  50,
			ReorderThreshold: 10,
			PurchaseCost:     decimal.NewFromInt(1500),
			SaleCost:         decimal.NewFromInt(2000),
			UnitMeasure:      entity.UnitMeasureKilogram,
			Location:         "Estante A-1",
		},
		{
			Name:             "Leche Descremada",
			Category:         "Lácteos",
			InitialQuantity:  25,
			ReorderThreshold: 5,
			PurchaseCost:     decimal.NewFromInt(800),
			SaleCost:         decimal.NewFromInt(1200),
			UnitMeasure:      entity.UnitMeasureLiter,
			Location:         "Refrigerador B-2",
		},
		{
			Name:             "Aceite de Oliva",
			Category:         "Aceites",
			InitialQuantity:  15,
			ReorderThreshold: 3,
			PurchaseCost:     decimal.NewFromInt(3000),
			SaleCost:         decimal.NewFromInt(4500),
			UnitMeasure:      entity.UnitMeasureLiter,
			Location:         "Estante C-3",
		},
		{
			Name:             "Harina de Trigo",
			Category:         "Harinas",
			InitialQuantity:  30,
			ReorderThreshold: 8,
			PurchaseCost:     decimal.NewFromInt(1200),
			SaleCost:         decimal.NewFromInt(1800),
			UnitMeasure:      entity.UnitMeasureKilogram,
			Location:         "Estante A-2",
		},
		{
			Name:             "Atún en Lata",
			Category:         "Enlatados",
			InitialQuantity:  40,
			ReorderThreshold: 12,
			PurchaseCost:     decimal.NewFromInt(1500),
			SaleCost:         decimal.NewFromInt(2200),
			UnitMeasure:      entity.UnitMeasureUnit,
			Location:         "Estante D-1",
		},
	}

	created := 0
	for _, s := range seeds {
		item, err := uc.AddItem(ctx, s)
		if err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				fmt.Printf("# %s ya existe, omitido\n", s.Name)
				continue
			}
			fmt.Fprintf(os.Stderr, "crear %q: %v\n", s.Name, err)
			os.Exit(1)
		}
		fmt.Printf("creado %s (%s) cantidad=%d\n", item.Name, item.ID, item.Quantity)
		created++
	}
	fmt.Printf("seed completado: %d productos creados\n", created)
}
