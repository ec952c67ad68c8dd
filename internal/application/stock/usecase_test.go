package stock_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artsiders/next-stock/internal/application/dto"
	"github.com/artsiders/next-stock/internal/application/stock"
	"github.com/artsiders/next-stock/internal/domain"
	"github.com/artsiders/next-stock/internal/domain/entity"
)

func newTestUseCase(initialStock int64) (*stock.MovementUseCase, *memStore) {
	store := newMemStore()
	store.addProduct(&entity.Product{
		ID:          1,
		Name:        "Clavier sans fil",
		Quantity:    initialStock,
		MinQuantity: 5,
		CategoryID:  1,
		SupplierID:  1,
	})
	uc := stock.NewMovementUseCase(
		&memTxRunner{s: store},
		&memProductRepo{s: store},
		&memMovementRepo{s: store},
	)
	return uc, store
}

// ──────────────────────────────────────────────────────────────────────────────
// CreateMovement
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateMovement_EntradaSumaStock(t *testing.T) {
	uc, store := newTestUseCase(10)

	out, err := uc.CreateMovement(context.Background(), dto.CreateMovementRequest{
		ProductID: 1, Type: "IN", Quantity: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), out.Quantity)
	assert.Equal(t, int64(15), store.productQuantity(1), "el stock cacheado debe reflejar la entrada")
	assert.Equal(t, 1, store.movementCount())
}

func TestCreateMovement_SalidaRestaStock(t *testing.T) {
	uc, store := newTestUseCase(10)

	_, err := uc.CreateMovement(context.Background(), dto.CreateMovementRequest{
		ProductID: 1, Type: "OUT", Quantity: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), store.productQuantity(1))
}

func TestCreateMovement_AjusteConSigno(t *testing.T) {
	uc, store := newTestUseCase(10)

	_, err := uc.CreateMovement(context.Background(), dto.CreateMovementRequest{
		ProductID: 1, Type: "ADJUSTMENT", Quantity: -4,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(6), store.productQuantity(1))
}

func TestCreateMovement_TipoInvalidoRechazado(t *testing.T) {
	uc, store := newTestUseCase(10)

	_, err := uc.CreateMovement(context.Background(), dto.CreateMovementRequest{
		ProductID: 1, Type: "TRANSFER", Quantity: 3,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 0, store.movementCount(), "una petición inválida no escribe nada")
}

func TestCreateMovement_CantidadNoPositivaRechazada(t *testing.T) {
	uc, _ := newTestUseCase(10)

	for _, q := range []int64{0, -5} {
		_, err := uc.CreateMovement(context.Background(), dto.CreateMovementRequest{
			ProductID: 1, Type: "IN", Quantity: q,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "IN con cantidad %d debe rechazarse", q)
	}
}

func TestCreateMovement_ProductoInexistente(t *testing.T) {
	uc, _ := newTestUseCase(10)

	_, err := uc.CreateMovement(context.Background(), dto.CreateMovementRequest{
		ProductID: 99, Type: "IN", Quantity: 5,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateMovement_SalidaSobregiradaNoAlteraEstado(t *testing.T) {
	uc, store := newTestUseCase(10)

	_, err := uc.CreateMovement(context.Background(), dto.CreateMovementRequest{
		ProductID: 1, Type: "OUT", Quantity: 11,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(10), store.productQuantity(1), "el stock no debe cambiar tras un rechazo")
	assert.Equal(t, 0, store.movementCount(), "no debe quedar registro en el libro")
}

func TestCreateMovement_AjusteBajoCeroRechazado(t *testing.T) {
	uc, store := newTestUseCase(10)

	_, err := uc.CreateMovement(context.Background(), dto.CreateMovementRequest{
		ProductID: 1, Type: "ADJUSTMENT", Quantity: -11,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(10), store.productQuantity(1))
}

// ──────────────────────────────────────────────────────────────────────────────
// DeleteMovement
// ──────────────────────────────────────────────────────────────────────────────

func TestDeleteMovement_DeshaceElEfecto(t *testing.T) {
	uc, store := newTestUseCase(10)
	ctx := context.Background()

	in, err := uc.CreateMovement(ctx, dto.CreateMovementRequest{ProductID: 1, Type: "IN", Quantity: 5})
	require.NoError(t, err)
	out, err := uc.CreateMovement(ctx, dto.CreateMovementRequest{ProductID: 1, Type: "OUT", Quantity: 3})
	require.NoError(t, err)
	require.Equal(t, int64(12), store.productQuantity(1))

	// Borrar la salida devuelve sus unidades
	require.NoError(t, uc.DeleteMovement(ctx, out.ID))
	assert.Equal(t, int64(15), store.productQuantity(1))

	// Borrar la entrada las quita
	require.NoError(t, uc.DeleteMovement(ctx, in.ID))
	assert.Equal(t, int64(10), store.productQuantity(1), "deshacer todo debe volver al stock inicial")
	assert.Equal(t, 0, store.movementCount())
}

func TestDeleteMovement_EntradaMayorQueStockTruncaEnCero(t *testing.T) {
	uc, store := newTestUseCase(0)
	ctx := context.Background()

	in, err := uc.CreateMovement(ctx, dto.CreateMovementRequest{ProductID: 1, Type: "IN", Quantity: 5})
	require.NoError(t, err)
	_, err = uc.CreateMovement(ctx, dto.CreateMovementRequest{ProductID: 1, Type: "OUT", Quantity: 4})
	require.NoError(t, err)
	require.Equal(t, int64(1), store.productQuantity(1))

	// Revertir la entrada de 5 con stock 1 trunca en cero en vez de quedar -4
	require.NoError(t, uc.DeleteMovement(ctx, in.ID))
	assert.Equal(t, int64(0), store.productQuantity(1))
}

func TestDeleteMovement_InexistenteNoEscribe(t *testing.T) {
	uc, store := newTestUseCase(10)

	err := uc.DeleteMovement(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, int64(10), store.productQuantity(1))
}

// ──────────────────────────────────────────────────────────────────────────────
// RecomputeQuantity
// ──────────────────────────────────────────────────────────────────────────────

func TestRecompute_CoincideConAplicacionIncremental(t *testing.T) {
	uc, store := newTestUseCase(0)
	ctx := context.Background()

	reqs := []dto.CreateMovementRequest{
		{ProductID: 1, Type: "IN", Quantity: 50},
		{ProductID: 1, Type: "OUT", Quantity: 12},
		{ProductID: 1, Type: "ADJUSTMENT", Quantity: -3},
		{ProductID: 1, Type: "IN", Quantity: 7},
		{ProductID: 1, Type: "OUT", Quantity: 20},
	}
	for _, r := range reqs {
		_, err := uc.CreateMovement(ctx, r)
		require.NoError(t, err)
	}
	incremental := store.productQuantity(1)

	out, err := uc.RecomputeQuantity(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, incremental, out.Quantity,
		"el replay del historial debe coincidir con la aplicación incremental")
	assert.Equal(t, incremental, store.productQuantity(1))
}

func TestRecompute_ReparaStockDerivado(t *testing.T) {
	uc, store := newTestUseCase(0)
	ctx := context.Background()

	_, err := uc.CreateMovement(ctx, dto.CreateMovementRequest{ProductID: 1, Type: "IN", Quantity: 30})
	require.NoError(t, err)

	// Corromper el cacheado por fuera del libro
	store.mu.Lock()
	store.products[1].Quantity = 999
	store.mu.Unlock()

	out, err := uc.RecomputeQuantity(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(30), out.Quantity, "recompute debe sobreescribir la deriva")
}

func TestRecompute_Idempotente(t *testing.T) {
	uc, store := newTestUseCase(0)
	ctx := context.Background()

	_, err := uc.CreateMovement(ctx, dto.CreateMovementRequest{ProductID: 1, Type: "IN", Quantity: 8})
	require.NoError(t, err)

	first, err := uc.RecomputeQuantity(ctx, 1)
	require.NoError(t, err)
	second, err := uc.RecomputeQuantity(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, first.Quantity, second.Quantity)
	assert.Equal(t, first.Quantity, store.productQuantity(1))
}

func TestRecompute_SinHistorialDejaCero(t *testing.T) {
	uc, _ := newTestUseCase(25)

	out, err := uc.RecomputeQuantity(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), out.Quantity,
		"sin movimientos el replay parte de cero, no del cacheado")
}

// ──────────────────────────────────────────────────────────────────────────────
// Concurrencia: dos salidas simultáneas nunca dejan stock negativo
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateMovement_SalidasConcurrentesNoSobregiran(t *testing.T) {
	uc, store := newTestUseCase(10)
	ctx := context.Background()

	const workers = 8
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.CreateMovement(ctx, dto.CreateMovementRequest{
				ProductID: 1, Type: "OUT", Quantity: 3,
			})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, domain.ErrInsufficientStock)
		}
	}
	assert.Equal(t, 3, succeeded, "con stock 10 solo caben tres salidas de 3")
	assert.Equal(t, int64(1), store.productQuantity(1))
	assert.Equal(t, 3, store.movementCount())
}

// El escenario completo: altas, bajas y borrados intercalados con fechas
// retrodatadas siguen siendo consistentes bajo recompute.
func TestLedger_EscenarioCompleto(t *testing.T) {
	uc, store := newTestUseCase(10)
	ctx := context.Background()

	backdated := time.Now().AddDate(0, 0, -7)
	_, err := uc.CreateMovement(ctx, dto.CreateMovementRequest{
		ProductID: 1, Type: "IN", Quantity: 5, Date: &backdated,
	})
	require.NoError(t, err)
	out, err := uc.CreateMovement(ctx, dto.CreateMovementRequest{ProductID: 1, Type: "OUT", Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(12), store.productQuantity(1))

	require.NoError(t, uc.DeleteMovement(ctx, out.ID))
	assert.Equal(t, int64(15), store.productQuantity(1))

	recomputed, err := uc.RecomputeQuantity(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(5), recomputed.Quantity,
		"el replay solo ve el libro: la única entrada de 5 con base cero")
}
