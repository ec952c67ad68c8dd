package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/artsiders/next-stock/internal/application/dto"
	"github.com/artsiders/next-stock/internal/domain/entity"
	"github.com/artsiders/next-stock/internal/domain/repository"
)

// Períodos soportados por los endpoints de estadísticas.
const (
	PeriodDay   = "day"
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

// Etiquetas francesas de los gráficos (la UI original usa date-fns con el
// locale fr; las semanas empiezan en lunes).
var (
	frWeekdays = [7]string{"lun.", "mar.", "mer.", "jeu.", "ven.", "sam.", "dim."}
	frMonths   = [12]string{"janv.", "févr.", "mars", "avr.", "mai", "juin",
		"juil.", "août", "sept.", "oct.", "nov.", "déc."}
)

// StatisticsUseCase lecturas agregadas para el tablero: resumen, stock bajo,
// valorización, por categoría y serie temporal de movimientos. Solo consume
// el stock cacheado; nunca lo modifica.
type StatisticsUseCase struct {
	repo repository.StatisticsRepository
}

// NewStatisticsUseCase construye el caso de uso.
func NewStatisticsUseCase(repo repository.StatisticsRepository) *StatisticsUseCase {
	return &StatisticsUseCase{repo: repo}
}

// Summary devuelve los contadores del tablero; los movimientos se cuentan
// desde el inicio del período que contiene a date.
func (uc *StatisticsUseCase) Summary(ctx context.Context, period string, date time.Time) (*dto.SummaryResponse, error) {
	counts, err := uc.repo.Summary(ctx, startOfPeriod(date, period))
	if err != nil {
		return nil, err
	}
	return &dto.SummaryResponse{
		TotalProducts:      counts.TotalProducts,
		LowStockProducts:   counts.LowStockProducts,
		OutOfStockProducts: counts.OutOfStockProducts,
		TotalMovements:     counts.TotalMovements,
	}, nil
}

// LowStock devuelve hasta 10 productos bajo su umbral de reorden, los más
// críticos primero.
func (uc *StatisticsUseCase) LowStock(ctx context.Context) ([]dto.LowStockProductResponse, error) {
	rows, err := uc.repo.ListLowStock(ctx, 10)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LowStockProductResponse, 0, len(rows))
	for _, r := range rows {
		var pct int64
		if r.MinQuantity > 0 {
			pct = int64(math.Round(float64(r.Quantity) / float64(r.MinQuantity) * 100))
		}
		out = append(out, dto.LowStockProductResponse{
			ID:          r.ID,
			Name:        r.Name,
			Quantity:    r.Quantity,
			MinQuantity: r.MinQuantity,
			Percentage:  pct,
		})
	}
	return out, nil
}

// StockValue devuelve la valorización del inventario a costo y a precio de
// venta, el costo promedio por unidad y el margen potencial.
func (uc *StatisticsUseCase) StockValue(ctx context.Context) (*dto.StockValueResponse, error) {
	v, err := uc.repo.StockValue(ctx)
	if err != nil {
		return nil, err
	}
	averageCost := decimal.Zero
	if v.TotalUnits > 0 {
		averageCost = v.TotalCost.Div(decimal.NewFromInt(v.TotalUnits))
	}
	return &dto.StockValueResponse{
		TotalValue:       v.TotalCost,
		AverageCost:      averageCost,
		PotentialRevenue: v.TotalRevenue,
		Margin:           v.TotalRevenue.Sub(v.TotalCost),
	}, nil
}

// CategoryStats devuelve productos y valorización a costo por categoría.
func (uc *StatisticsUseCase) CategoryStats(ctx context.Context) ([]dto.CategoryStatResponse, error) {
	rows, err := uc.repo.CategoryStats(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryStatResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.CategoryStatResponse{Name: r.Name, Count: r.Count, Value: r.Value})
	}
	return out, nil
}

// MovementSeries devuelve las cantidades IN/OUT/ADJUSTMENT agregadas por
// intervalo dentro del período: day → 24 horas, week → 7 días, month → días
// del mes, year → 12 meses. Los ajustes se acumulan en valor absoluto.
func (uc *StatisticsUseCase) MovementSeries(ctx context.Context, period string, date time.Time) ([]dto.MovementStatPoint, error) {
	buckets := buildBuckets(date, period)
	from := buckets[0].start
	to := buckets[len(buckets)-1].end

	points, err := uc.repo.MovementsBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	out := make([]dto.MovementStatPoint, len(buckets))
	for i, b := range buckets {
		out[i] = dto.MovementStatPoint{Date: b.label}
	}
	for _, p := range points {
		for i, b := range buckets {
			if !p.Date.Before(b.start) && p.Date.Before(b.end) {
				switch p.Type {
				case entity.MovementTypeIN:
					out[i].In += p.Quantity
				case entity.MovementTypeOUT:
					out[i].Out += p.Quantity
				case entity.MovementTypeADJUSTMENT:
					q := p.Quantity
					if q < 0 {
						q = -q
					}
					out[i].Adjustment += q
				}
				break
			}
		}
	}
	return out, nil
}

type bucket struct {
	start time.Time
	end   time.Time // exclusivo
	label string
}

// buildBuckets arma los intervalos del gráfico para el período que contiene
// a date.
func buildBuckets(date time.Time, period string) []bucket {
	switch period {
	case PeriodDay:
		day := startOfDay(date)
		buckets := make([]bucket, 24)
		for h := 0; h < 24; h++ {
			start := day.Add(time.Duration(h) * time.Hour)
			buckets[h] = bucket{
				start: start,
				end:   start.Add(time.Hour),
				label: fmt.Sprintf("%02dh", h),
			}
		}
		return buckets
	case PeriodWeek:
		monday := startOfWeek(date)
		buckets := make([]bucket, 7)
		for d := 0; d < 7; d++ {
			start := monday.AddDate(0, 0, d)
			buckets[d] = bucket{
				start: start,
				end:   start.AddDate(0, 0, 1),
				label: frWeekdays[d],
			}
		}
		return buckets
	case PeriodYear:
		january := time.Date(date.Year(), time.January, 1, 0, 0, 0, 0, date.Location())
		buckets := make([]bucket, 12)
		for m := 0; m < 12; m++ {
			start := january.AddDate(0, m, 0)
			buckets[m] = bucket{
				start: start,
				end:   start.AddDate(0, 1, 0),
				label: frMonths[m],
			}
		}
		return buckets
	default: // month
		first := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
		days := first.AddDate(0, 1, -1).Day()
		buckets := make([]bucket, days)
		for d := 0; d < days; d++ {
			start := first.AddDate(0, 0, d)
			buckets[d] = bucket{
				start: start,
				end:   start.AddDate(0, 0, 1),
				label: fmt.Sprintf("%d", d+1),
			}
		}
		return buckets
	}
}

// startOfPeriod devuelve el inicio del período que contiene a date.
func startOfPeriod(date time.Time, period string) time.Time {
	switch period {
	case PeriodDay:
		return startOfDay(date)
	case PeriodWeek:
		return startOfWeek(date)
	case PeriodYear:
		return time.Date(date.Year(), time.January, 1, 0, 0, 0, 0, date.Location())
	default:
		return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// startOfWeek devuelve el lunes de la semana de t.
func startOfWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return startOfDay(t).AddDate(0, 0, -offset)
}
