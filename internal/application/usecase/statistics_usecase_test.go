package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artsiders/next-stock/internal/application/usecase"
	"github.com/artsiders/next-stock/internal/domain/repository"
)

// stubStatsRepo devuelve datos fijos; captura el rango pedido para verificar
// el recorte por período.
type stubStatsRepo struct {
	points []repository.MovementPoint
	from   time.Time
	to     time.Time
}

func (r *stubStatsRepo) Summary(ctx context.Context, since time.Time) (*repository.SummaryCounts, error) {
	r.from = since
	return &repository.SummaryCounts{TotalProducts: 20, LowStockProducts: 3, OutOfStockProducts: 1, TotalMovements: 12}, nil
}
func (r *stubStatsRepo) ListLowStock(ctx context.Context, limit int) ([]repository.LowStockRow, error) {
	return []repository.LowStockRow{
		{ID: 1, Name: "Ramette papier A4", Quantity: 2, MinQuantity: 10},
		{ID: 2, Name: "Toner laser", Quantity: 3, MinQuantity: 4},
		{ID: 3, Name: "Piles AA x24", Quantity: 1, MinQuantity: 0},
	}, nil
}
func (r *stubStatsRepo) StockValue(ctx context.Context) (*repository.StockValue, error) {
	return &repository.StockValue{
		TotalCost:    decimal.NewFromInt(1000),
		TotalRevenue: decimal.NewFromInt(1400),
		TotalUnits:   50,
	}, nil
}
func (r *stubStatsRepo) CategoryStats(ctx context.Context) ([]repository.CategoryStat, error) {
	return nil, nil
}
func (r *stubStatsRepo) MovementsBetween(ctx context.Context, from, to time.Time) ([]repository.MovementPoint, error) {
	r.from, r.to = from, to
	return r.points, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// LowStock y StockValue
// ──────────────────────────────────────────────────────────────────────────────

func TestLowStock_PorcentajeDelUmbral(t *testing.T) {
	uc := usecase.NewStatisticsUseCase(&stubStatsRepo{})

	out, err := uc.LowStock(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 3)

	assert.Equal(t, int64(20), out[0].Percentage, "2 de 10 es el 20%")
	assert.Equal(t, int64(75), out[1].Percentage, "3 de 4 es el 75%")
	assert.Equal(t, int64(0), out[2].Percentage, "umbral cero no divide")
}

func TestStockValue_CostoPromedioYMargen(t *testing.T) {
	uc := usecase.NewStatisticsUseCase(&stubStatsRepo{})

	out, err := uc.StockValue(context.Background())
	require.NoError(t, err)
	assert.True(t, out.AverageCost.Equal(decimal.NewFromInt(20)), "1000 / 50 unidades")
	assert.True(t, out.Margin.Equal(decimal.NewFromInt(400)), "1400 - 1000")
}

// ──────────────────────────────────────────────────────────────────────────────
// MovementSeries: intervalos y etiquetas por período
// ──────────────────────────────────────────────────────────────────────────────

// Miércoles 15 de abril de 2026, 14:30.
var refDate = time.Date(2026, time.April, 15, 14, 30, 0, 0, time.UTC)

func TestMovementSeries_SemanaEmpiezaEnLunes(t *testing.T) {
	repo := &stubStatsRepo{}
	uc := usecase.NewStatisticsUseCase(repo)

	out, err := uc.MovementSeries(context.Background(), usecase.PeriodWeek, refDate)
	require.NoError(t, err)
	require.Len(t, out, 7)

	assert.Equal(t, "lun.", out[0].Date)
	assert.Equal(t, "dim.", out[6].Date)
	assert.Equal(t, time.Date(2026, time.April, 13, 0, 0, 0, 0, time.UTC), repo.from,
		"la semana del miércoles 15 empieza el lunes 13")
	assert.Equal(t, time.Date(2026, time.April, 20, 0, 0, 0, 0, time.UTC), repo.to)
}

func TestMovementSeries_AgrupaPorDiaDeLaSemana(t *testing.T) {
	repo := &stubStatsRepo{points: []repository.MovementPoint{
		{Date: time.Date(2026, time.April, 13, 9, 0, 0, 0, time.UTC), Type: "IN", Quantity: 10},
		{Date: time.Date(2026, time.April, 13, 17, 0, 0, 0, time.UTC), Type: "OUT", Quantity: 4},
		{Date: time.Date(2026, time.April, 15, 12, 0, 0, 0, time.UTC), Type: "ADJUSTMENT", Quantity: -3},
	}}
	uc := usecase.NewStatisticsUseCase(repo)

	out, err := uc.MovementSeries(context.Background(), usecase.PeriodWeek, refDate)
	require.NoError(t, err)

	assert.Equal(t, int64(10), out[0].In)
	assert.Equal(t, int64(4), out[0].Out)
	assert.Equal(t, int64(3), out[2].Adjustment, "los ajustes se acumulan en valor absoluto")
}

func TestMovementSeries_DiaVeinticuatroHoras(t *testing.T) {
	uc := usecase.NewStatisticsUseCase(&stubStatsRepo{})

	out, err := uc.MovementSeries(context.Background(), usecase.PeriodDay, refDate)
	require.NoError(t, err)
	require.Len(t, out, 24)
	assert.Equal(t, "00h", out[0].Date)
	assert.Equal(t, "23h", out[23].Date)
}

func TestMovementSeries_MesConSusDias(t *testing.T) {
	uc := usecase.NewStatisticsUseCase(&stubStatsRepo{})

	out, err := uc.MovementSeries(context.Background(), usecase.PeriodMonth, refDate)
	require.NoError(t, err)
	require.Len(t, out, 30, "abril tiene 30 días")
	assert.Equal(t, "1", out[0].Date)
	assert.Equal(t, "30", out[29].Date)
}

func TestMovementSeries_AnioConMesesFranceses(t *testing.T) {
	uc := usecase.NewStatisticsUseCase(&stubStatsRepo{})

	out, err := uc.MovementSeries(context.Background(), usecase.PeriodYear, refDate)
	require.NoError(t, err)
	require.Len(t, out, 12)
	assert.Equal(t, "janv.", out[0].Date)
	assert.Equal(t, "déc.", out[11].Date)
}

func TestSummary_MovimientosDesdeInicioDelPeriodo(t *testing.T) {
	repo := &stubStatsRepo{}
	uc := usecase.NewStatisticsUseCase(repo)

	out, err := uc.Summary(context.Background(), usecase.PeriodMonth, refDate)
	require.NoError(t, err)
	assert.Equal(t, int64(20), out.TotalProducts)
	assert.Equal(t, time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC), repo.from,
		"el período month cuenta desde el día 1")
}
