package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SummaryCounts contadores del resumen del tablero.
type SummaryCounts struct {
	TotalProducts      int64
	LowStockProducts   int64 // 0 < quantity < min_quantity
	OutOfStockProducts int64 // quantity = 0
	TotalMovements     int64 // movimientos desde el inicio del período
}

// LowStockRow producto bajo su umbral de reorden.
type LowStockRow struct {
	ID          int64
	Name        string
	Quantity    int64
	MinQuantity int64
}

// StockValue totales de valorización del inventario.
type StockValue struct {
	TotalCost    decimal.Decimal // sum(quantity * cost_price)
	TotalRevenue decimal.Decimal // sum(quantity * unit_price)
	TotalUnits   int64
}

// CategoryStat productos y valorización a costo por categoría.
type CategoryStat struct {
	Name  string
	Count int64
	Value decimal.Decimal
}

// MovementPoint punto crudo para la serie temporal de movimientos.
type MovementPoint struct {
	Date     time.Time
	Type     string
	Quantity int64
}

// StatisticsRepository consultas de solo lectura para estadísticas.
// No requieren aislamiento mayor a read-committed ni bloquean filas.
type StatisticsRepository interface {
	Summary(ctx context.Context, movementsSince time.Time) (*SummaryCounts, error)
	ListLowStock(ctx context.Context, limit int) ([]LowStockRow, error)
	StockValue(ctx context.Context) (*StockValue, error)
	CategoryStats(ctx context.Context) ([]CategoryStat, error)
	// MovementsBetween devuelve fecha, tipo y cantidad de los movimientos del
	// rango; la agrupación por intervalo se hace en la capa de aplicación.
	MovementsBetween(ctx context.Context, from, to time.Time) ([]MovementPoint, error)
}
