package ledger_test

import (
	"context"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/ledger"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

// memStore emula el almacén relacional: un mutex por transacción (el candado de
// fila del motor real) y snapshot/restore para el rollback.
type memStore struct {
	mu        sync.Mutex
	items     map[string]*entity.Item
	movements []*entity.Movement
	nextMovID int64
}

func newMemStore() *memStore {
	return &memStore{items: make(map[string]*entity.Item), nextMovID: 1}
}

func (s *memStore) snapshot() (map[string]*entity.Item, []*entity.Movement, int64) {
	items := make(map[string]*entity.Item, len(s.items))
	for id, it := range s.items {
		cp := *it
		items[id] = &cp
	}
	movs := make([]*entity.Movement, len(s.movements))
	copy(movs, s.movements)
	return items, movs, s.nextMovID
}

// memTxRunner ejecuta fn bajo el mutex del store; si fn falla restaura el snapshot,
// igual que el Rollback de la transacción real.
type memTxRunner struct{ store *memStore }

func (r *memTxRunner) Run(_ context.Context, fn func(
	itemRepo repository.ItemRepository,
	movRepo repository.MovementRepository,
) error) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	items, movs, next := r.store.snapshot()
	if err := fn(&memItemRepo{store: r.store}, &memMovementRepo{store: r.store}); err != nil {
		r.store.items, r.store.movements, r.store.nextMovID = items, movs, next
		return err
	}
	return nil
}

type memItemRepo struct{ store *memStore }

func (r *memItemRepo) Create(item *entity.Item) error {
	for _, it := range r.store.items {
		if it.Name == item.Name {
			return domain.ErrDuplicate // nombre con constraint UNIQUE en el almacén real
		}
	}
	cp := *item
	r.store.items[item.ID] = &cp
	return nil
}

func (r *memItemRepo) GetByID(id string) (*entity.Item, error) {
	if it, ok := r.store.items[id]; ok {
		cp := *it
		return &cp, nil
	}
	return nil, nil
}

func (r *memItemRepo) GetActiveForUpdate(id string) (*entity.Item, error) {
	it, ok := r.store.items[id]
	if !ok || !it.Active {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

func (r *memItemRepo) Update(item *entity.Item) error {
	existing, ok := r.store.items[item.ID]
	if !ok || !existing.Active {
		return domain.ErrNotFound // el UPDATE real exige la fila activa
	}
	qty := existing.Quantity
	cp := *item
	cp.Quantity = qty // Update jamás escribe la cantidad
	r.store.items[item.ID] = &cp
	return nil
}

func (r *memItemRepo) UpdateQuantity(id string, quantity int64) error {
	if it, ok := r.store.items[id]; ok {
		it.Quantity = quantity
	}
	return nil
}

func (r *memItemRepo) SetActive(id string, active bool) error {
	it, ok := r.store.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	it.Active = active
	return nil
}

func (r *memItemRepo) List(filter repository.ItemFilter) ([]*entity.Item, error) {
	var out []*entity.Item
	for _, it := range r.store.items {
		if !it.Active {
			continue
		}
		if filter.Category != "" && it.Category != filter.Category {
			continue
		}
		if filter.Query != "" && !strings.Contains(strings.ToLower(it.Name), strings.ToLower(filter.Query)) {
			continue
		}
		cp := *it
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memItemRepo) Categories() ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, it := range r.store.items {
		if it.Active && it.Category != "" && !seen[it.Category] {
			seen[it.Category] = true
			out = append(out, it.Category)
		}
	}
	sort.Strings(out)
	return out, nil
}

type memMovementRepo struct{ store *memStore }

func (r *memMovementRepo) Create(m *entity.Movement) error {
	cp := *m
	cp.ID = r.store.nextMovID
	r.store.nextMovID++
	r.store.movements = append(r.store.movements, &cp)
	m.ID = cp.ID
	return nil
}

func (r *memMovementRepo) List(itemID string, since *time.Time, limit, offset int) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for i := len(r.store.movements) - 1; i >= 0; i-- { // más reciente primero
		m := r.store.movements[i]
		if itemID != "" && m.ItemID != itemID {
			continue
		}
		if since != nil && m.CreatedAt.Before(*since) {
			continue
		}
		cp := *m
		out = append(out, &cp)
	}
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *memMovementRepo) OutboundTotalSince(itemID string, since time.Time) (int64, int, error) {
	var total int64
	count := 0
	for _, m := range r.store.movements {
		if m.ItemID != itemID || m.CreatedAt.Before(since) {
			continue
		}
		count++
		if m.Direction == entity.MovementOutbound {
			total += m.Quantity
		}
	}
	return total, count, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func newEngine(t *testing.T) (*ledger.LedgerUseCase, *memStore) {
	t.Helper()
	store := newMemStore()
	return ledger.NewLedgerUseCase(&memTxRunner{store: store}), store
}

func mustAddItem(t *testing.T, uc *ledger.LedgerUseCase, name string, qty, threshold int64) *dto.ItemResponse {
	t.Helper()
	resp, err := uc.AddItem(context.Background(), dto.CreateItemRequest{
		Name:             name,
		InitialQuantity:  qty,
		ReorderThreshold: threshold,
	})
	require.NoError(t, err)
	require.NotNil(t, resp)
	return resp
}

// signedSum reconstruye la cantidad de un artículo desde su ledger.
func signedSum(store *memStore, itemID string) int64 {
	var sum int64
	for _, m := range store.movements {
		if m.ItemID == itemID {
			sum += m.Signed()
		}
	}
	return sum
}

// ──────────────────────────────────────────────────────────────────────────────
// AddItem
// ──────────────────────────────────────────────────────────────────────────────

// Crear con stock inicial registra un movimiento INBOUND en la misma transacción:
// el invariante del ledger se cumple desde t=0.
func TestAddItem_StockInicialRegistraMovimiento(t *testing.T) {
	uc, store := newEngine(t)

	item := mustAddItem(t, uc, "Arroz Integral", 50, 10)

	require.Len(t, store.movements, 1)
	mov := store.movements[0]
	assert.Equal(t, entity.MovementInbound, mov.Direction)
	assert.Equal(t, item.ID, mov.ItemID)
	assert.Equal(t, int64(50), mov.Quantity)
	assert.Equal(t, "item created", mov.Reason)
	assert.Equal(t, "sistema", mov.Actor, "sin actor explícito se registra el placeholder")
	assert.Equal(t, item.Quantity, signedSum(store, item.ID))
}

// Con cantidad inicial cero no se registra movimiento alguno.
func TestAddItem_SinStockInicialNoHayMovimiento(t *testing.T) {
	uc, store := newEngine(t)

	item := mustAddItem(t, uc, "Leche Descremada", 0, 5)

	assert.Empty(t, store.movements)
	assert.Equal(t, int64(0), item.Quantity)
	assert.Equal(t, entity.StatusOutOfStock, item.Status)
}

func TestAddItem_NombreVacioFalla(t *testing.T) {
	uc, _ := newEngine(t)

	_, err := uc.AddItem(context.Background(), dto.CreateItemRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAddItem_NumericosNegativosFallan(t *testing.T) {
	uc, _ := newEngine(t)
	ctx := context.Background()

	_, err := uc.AddItem(ctx, dto.CreateItemRequest{Name: "x", InitialQuantity: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.AddItem(ctx, dto.CreateItemRequest{Name: "x", ReorderThreshold: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.AddItem(ctx, dto.CreateItemRequest{Name: "x", PurchaseCost: decimal.NewFromInt(-5)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAddItem_MedidaInvalidaFalla(t *testing.T) {
	uc, _ := newEngine(t)

	_, err := uc.AddItem(context.Background(), dto.CreateItemRequest{Name: "x", UnitMeasure: "GALON"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// El nombre de artículo es único en el catálogo: repetirlo devuelve ErrDuplicate
// sin registrar nada nuevo en el ledger.
func TestAddItem_NombreRepetidoFalla(t *testing.T) {
	uc, store := newEngine(t)

	mustAddItem(t, uc, "Arroz Integral", 50, 10)
	_, err := uc.AddItem(context.Background(), dto.CreateItemRequest{Name: "Arroz Integral", InitialQuantity: 5})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Len(t, store.movements, 1, "solo el movimiento de creación del primero")
}

func TestAddItem_MedidaPorDefectoEsUnit(t *testing.T) {
	uc, _ := newEngine(t)

	item := mustAddItem(t, uc, "Atún en Lata", 0, 0)
	assert.Equal(t, entity.UnitMeasureUnit, item.UnitMeasure)
	assert.Equal(t, "unid", item.MeasureDisplay)
}

// ──────────────────────────────────────────────────────────────────────────────
// AdjustQuantity
// ──────────────────────────────────────────────────────────────────────────────

// Entrada y salida de ida y vuelta: 0 → +10 → −4, con exactamente dos movimientos
// en orden de inserción.
func TestAdjustQuantity_IdaYVuelta(t *testing.T) {
	uc, store := newEngine(t)
	ctx := context.Background()
	item := mustAddItem(t, uc, "Harina de Trigo", 0, 8)

	qty, err := uc.AdjustQuantity(ctx, dto.AdjustQuantityRequest{
		ItemID: item.ID, Direction: entity.MovementInbound, Quantity: 10, Reason: "restock",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), qty)

	qty, err = uc.AdjustQuantity(ctx, dto.AdjustQuantityRequest{
		ItemID: item.ID, Direction: entity.MovementOutbound, Quantity: 4, Reason: "sale",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(6), qty)

	require.Len(t, store.movements, 2)
	assert.Equal(t, "restock", store.movements[0].Reason)
	assert.Equal(t, "sale", store.movements[1].Reason)
	assert.Equal(t, int64(6), store.items[item.ID].Quantity)
	assert.Equal(t, int64(6), signedSum(store, item.ID))
}

// Una salida mayor al stock no muta nada: ni cantidad ni ledger, y el error trae
// la cantidad vigente.
func TestAdjustQuantity_SalidaExcedenteNoMutaEstado(t *testing.T) {
	uc, store := newEngine(t)
	ctx := context.Background()
	item := mustAddItem(t, uc, "Aceite de Oliva", 5, 3)
	movsBefore := len(store.movements)

	qty, err := uc.AdjustQuantity(ctx, dto.AdjustQuantityRequest{
		ItemID: item.ID, Direction: entity.MovementOutbound, Quantity: 6,
	})

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(5), qty, "la respuesta debe traer la cantidad vigente")
	assert.Equal(t, int64(5), store.items[item.ID].Quantity, "la cantidad no debe cambiar")
	assert.Len(t, store.movements, movsBefore, "no debe registrarse movimiento")
}

// Sacar exactamente el stock disponible es válido y deja cantidad cero.
func TestAdjustQuantity_SalidaExacta(t *testing.T) {
	uc, store := newEngine(t)
	item := mustAddItem(t, uc, "Atún en Lata", 40, 12)

	qty, err := uc.AdjustQuantity(context.Background(), dto.AdjustQuantityRequest{
		ItemID: item.ID, Direction: entity.MovementOutbound, Quantity: 40,
	})

	require.NoError(t, err)
	assert.Zero(t, qty)
	assert.Equal(t, int64(0), signedSum(store, item.ID))
}

func TestAdjustQuantity_MagnitudNoPositivaFalla(t *testing.T) {
	uc, _ := newEngine(t)
	ctx := context.Background()
	item := mustAddItem(t, uc, "Arroz", 10, 0)

	for _, qty := range []int64{0, -3} {
		_, err := uc.AdjustQuantity(ctx, dto.AdjustQuantityRequest{
			ItemID: item.ID, Direction: entity.MovementInbound, Quantity: qty,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "magnitud %d debe fallar", qty)
	}
}

func TestAdjustQuantity_DireccionInvalidaFalla(t *testing.T) {
	uc, _ := newEngine(t)
	item := mustAddItem(t, uc, "Arroz", 10, 0)

	_, err := uc.AdjustQuantity(context.Background(), dto.AdjustQuantityRequest{
		ItemID: item.ID, Direction: "SIDEWAYS", Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAdjustQuantity_ArticuloInexistente(t *testing.T) {
	uc, _ := newEngine(t)

	_, err := uc.AdjustQuantity(context.Background(), dto.AdjustQuantityRequest{
		ItemID: "no-existe", Direction: entity.MovementInbound, Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Un artículo dado de baja rechaza ajustes nuevos pero su historial sigue consultable.
func TestAdjustQuantity_ArticuloInactivo(t *testing.T) {
	uc, store := newEngine(t)
	ctx := context.Background()
	item := mustAddItem(t, uc, "Descontinuado", 20, 0)
	store.items[item.ID].Active = false

	_, err := uc.AdjustQuantity(ctx, dto.AdjustQuantityRequest{
		ItemID: item.ID, Direction: entity.MovementOutbound, Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	movs, err := (&memMovementRepo{store: store}).List(item.ID, nil, 0, 0)
	require.NoError(t, err)
	assert.Len(t, movs, 1, "el movimiento de creación debe seguir consultable")
}

// N salidas concurrentes de magnitud 1 sobre stock N: todas deben aplicarse sin
// updates perdidos, dejando cantidad 0 y exactamente N movimientos OUTBOUND.
func TestAdjustQuantity_ConcurrenciaSinUpdatesPerdidos(t *testing.T) {
	const n = 50
	uc, store := newEngine(t)
	ctx := context.Background()
	item := mustAddItem(t, uc, "Concurrente", n, 0)

	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.AdjustQuantity(ctx, dto.AdjustQuantityRequest{
				ItemID: item.ID, Direction: entity.MovementOutbound, Quantity: 1, Reason: "venta",
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
	assert.Equal(t, int64(0), store.items[item.ID].Quantity)

	outbound := 0
	for _, m := range store.movements {
		if m.ItemID == item.ID && m.Direction == entity.MovementOutbound {
			outbound++
		}
	}
	assert.Equal(t, n, outbound)
	assert.Equal(t, int64(0), signedSum(store, item.ID))
}

// Propiedad de fondo: tras cualquier secuencia de ajustes válidos, la cantidad
// almacenada coincide con la reconstrucción desde el ledger.
func TestAdjustQuantity_InvarianteDelLedger(t *testing.T) {
	uc, store := newEngine(t)
	ctx := context.Background()
	item := mustAddItem(t, uc, "Propiedad", 7, 2)

	steps := []struct {
		direction string
		qty       int64
	}{
		{entity.MovementInbound, 13},
		{entity.MovementOutbound, 5},
		{entity.MovementInbound, 1},
		{entity.MovementOutbound, 16},
		{entity.MovementInbound, 30},
		{entity.MovementOutbound, 29},
	}
	for _, s := range steps {
		_, err := uc.AdjustQuantity(ctx, dto.AdjustQuantityRequest{
			ItemID: item.ID, Direction: s.direction, Quantity: s.qty,
		})
		require.NoError(t, err)
	}

	assert.Equal(t, int64(1), store.items[item.ID].Quantity)
	assert.Equal(t, store.items[item.ID].Quantity, signedSum(store, item.ID))
	assert.GreaterOrEqual(t, store.items[item.ID].Quantity, int64(0), "la cantidad nunca es negativa")
}

// ──────────────────────────────────────────────────────────────────────────────
// DepletionUseCase
// ──────────────────────────────────────────────────────────────────────────────

func TestDepletion_SinMovimientosEnVentana(t *testing.T) {
	uc, store := newEngine(t)
	item := mustAddItem(t, uc, "Nuevo", 0, 0) // sin movimiento de creación

	dep := ledger.NewDepletionUseCase(&memItemRepo{store: store}, &memMovementRepo{store: store})
	est, err := dep.Estimate(context.Background(), item.ID, 30)

	require.NoError(t, err)
	assert.Equal(t, "NO_DATA", est.State)
}

func TestDepletion_SoloEntradasEsIlimitado(t *testing.T) {
	uc, store := newEngine(t)
	item := mustAddItem(t, uc, "Solo Entradas", 100, 0) // movimiento INBOUND de creación

	dep := ledger.NewDepletionUseCase(&memItemRepo{store: store}, &memMovementRepo{store: store})
	est, err := dep.Estimate(context.Background(), item.ID, 30)

	require.NoError(t, err)
	assert.Equal(t, "UNBOUNDED", est.State)
}

// 60 unidades de salida en 30 días con 10 en stock → 5.0 días (fraccional permitido).
func TestDepletion_ProyeccionLineal(t *testing.T) {
	uc, store := newEngine(t)
	ctx := context.Background()
	item := mustAddItem(t, uc, "Consumible", 70, 0)

	_, err := uc.AdjustQuantity(ctx, dto.AdjustQuantityRequest{
		ItemID: item.ID, Direction: entity.MovementOutbound, Quantity: 60, Reason: "consumo",
	})
	require.NoError(t, err)

	dep := ledger.NewDepletionUseCase(&memItemRepo{store: store}, &memMovementRepo{store: store})
	est, err := dep.Estimate(ctx, item.ID, 30)

	require.NoError(t, err)
	assert.Equal(t, "ESTIMATED", est.State)
	assert.InDelta(t, 2.0, est.DailyRate, 1e-9)
	assert.InDelta(t, 5.0, est.Days, 1e-9)
}

func TestDepletion_VentanaInvalida(t *testing.T) {
	_, store := newEngine(t)
	dep := ledger.NewDepletionUseCase(&memItemRepo{store: store}, &memMovementRepo{store: store})

	_, err := dep.Estimate(context.Background(), "algo", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDepletion_ArticuloInexistente(t *testing.T) {
	_, store := newEngine(t)
	dep := ledger.NewDepletionUseCase(&memItemRepo{store: store}, &memMovementRepo{store: store})

	_, err := dep.Estimate(context.Background(), "no-existe", 30)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
