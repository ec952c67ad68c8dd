package stock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artsiders/next-stock/internal/domain"
	"github.com/artsiders/next-stock/internal/domain/entity"
	"github.com/artsiders/next-stock/internal/domain/stock"
)

// ──────────────────────────────────────────────────────────────────────────────
// Validate
// ──────────────────────────────────────────────────────────────────────────────

func TestValidate_TipoInvalido(t *testing.T) {
	err := stock.Validate("TRANSFER", 5)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestValidate_MagnitudNoPositiva(t *testing.T) {
	assert.ErrorIs(t, stock.Validate(entity.MovementTypeIN, 0), domain.ErrInvalidInput)
	assert.ErrorIs(t, stock.Validate(entity.MovementTypeIN, -3), domain.ErrInvalidInput)
	assert.ErrorIs(t, stock.Validate(entity.MovementTypeOUT, -1), domain.ErrInvalidInput)
}

func TestValidate_AjusteConSigno(t *testing.T) {
	// ADJUSTMENT es el único tipo que admite delta negativo; cero nunca.
	assert.NoError(t, stock.Validate(entity.MovementTypeADJUSTMENT, -4))
	assert.NoError(t, stock.Validate(entity.MovementTypeADJUSTMENT, 4))
	assert.ErrorIs(t, stock.Validate(entity.MovementTypeADJUSTMENT, 0), domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Apply / Reverse
// ──────────────────────────────────────────────────────────────────────────────

func TestApply_EntradaYSalida(t *testing.T) {
	got, err := stock.Apply(10, entity.MovementTypeIN, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(15), got)

	got, err = stock.Apply(15, entity.MovementTypeOUT, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(12), got)
}

func TestApply_SalidaMayorQueStock(t *testing.T) {
	// Política estricta: se rechaza la operación completa y el stock no cambia.
	got, err := stock.Apply(5, entity.MovementTypeOUT, 8)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(5), got)
}

func TestApply_AjusteNegativoBajoCero(t *testing.T) {
	got, err := stock.Apply(2, entity.MovementTypeADJUSTMENT, -6)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(2), got)
}

func TestApply_AjusteDelta(t *testing.T) {
	got, err := stock.Apply(7, entity.MovementTypeADJUSTMENT, -2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), got)

	got, err = stock.Apply(7, entity.MovementTypeADJUSTMENT, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(9), got)
}

// Aplicar un movimiento e inmediatamente revertirlo restaura el stock previo,
// para cualquier magnitud que la política permita aplicar.
func TestReverse_DeshaceAplicacion(t *testing.T) {
	for _, q := range []int64{1, 5, 100} {
		after, err := stock.Apply(10, entity.MovementTypeIN, q)
		require.NoError(t, err)
		assert.Equal(t, int64(10), stock.Reverse(after, entity.MovementTypeIN, q))
	}
	for _, q := range []int64{1, 5, 10} {
		after, err := stock.Apply(10, entity.MovementTypeOUT, q)
		require.NoError(t, err)
		assert.Equal(t, int64(10), stock.Reverse(after, entity.MovementTypeOUT, q))
	}
	for _, q := range []int64{-7, -1, 3} {
		after, err := stock.Apply(10, entity.MovementTypeADJUSTMENT, q)
		require.NoError(t, err)
		assert.Equal(t, int64(10), stock.Reverse(after, entity.MovementTypeADJUSTMENT, q))
	}
}

func TestReverse_EntradaTruncaEnCero(t *testing.T) {
	// El stock de la entrada ya fue consumido: revertirla trunca en cero.
	assert.Equal(t, int64(0), stock.Reverse(3, entity.MovementTypeIN, 8))
}

// ──────────────────────────────────────────────────────────────────────────────
// Replay
// ──────────────────────────────────────────────────────────────────────────────

func mov(movType string, q int64) *entity.StockMovement {
	return &entity.StockMovement{Type: movType, Quantity: q}
}

// El replay de cualquier prefijo del historial coincide con el stock mantenido
// incrementalmente tras ese mismo prefijo (consistencia apply/replay).
func TestReplay_ConsistenteConApply(t *testing.T) {
	seq := []*entity.StockMovement{
		mov(entity.MovementTypeIN, 10),
		mov(entity.MovementTypeOUT, 4),
		mov(entity.MovementTypeADJUSTMENT, -2),
		mov(entity.MovementTypeIN, 7),
		mov(entity.MovementTypeADJUSTMENT, 5),
		mov(entity.MovementTypeOUT, 9),
	}

	var incremental int64
	for i, m := range seq {
		next, err := stock.Apply(incremental, m.Type, m.Quantity)
		require.NoError(t, err, "movimiento %d debe ser aplicable", i)
		incremental = next

		assert.Equal(t, incremental, stock.Replay(seq[:i+1]),
			"replay del prefijo %d debe igualar el stock incremental", i+1)
	}
}

func TestReplay_OrdenIndependiente(t *testing.T) {
	a := []*entity.StockMovement{
		mov(entity.MovementTypeIN, 10),
		mov(entity.MovementTypeOUT, 4),
		mov(entity.MovementTypeADJUSTMENT, -3),
	}
	b := []*entity.StockMovement{a[2], a[0], a[1]}
	assert.Equal(t, stock.Replay(a), stock.Replay(b))
}

func TestReplay_TruncaTotalNegativo(t *testing.T) {
	// Un historial dañado (anterior a la política estricta) reconcilia a cero.
	h := []*entity.StockMovement{
		mov(entity.MovementTypeIN, 2),
		mov(entity.MovementTypeOUT, 5),
	}
	assert.Equal(t, int64(0), stock.Replay(h))
}

func TestReplay_Idempotente(t *testing.T) {
	h := []*entity.StockMovement{
		mov(entity.MovementTypeIN, 9),
		mov(entity.MovementTypeADJUSTMENT, -4),
	}
	first := stock.Replay(h)
	assert.Equal(t, first, stock.Replay(h))
}

// Escenario completo: 10 → IN(5)=15 → OUT(3)=12 → borrar OUT=15 → borrar IN=10.
func TestEscenario_AplicarYDeshacerTodo(t *testing.T) {
	current := int64(10)

	current, err := stock.Apply(current, entity.MovementTypeIN, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(15), current)

	current, err = stock.Apply(current, entity.MovementTypeOUT, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(12), current)

	current = stock.Reverse(current, entity.MovementTypeOUT, 3)
	assert.Equal(t, int64(15), current)

	current = stock.Reverse(current, entity.MovementTypeIN, 5)
	assert.Equal(t, int64(10), current)
}
