package dto

import "github.com/shopspring/decimal"

// SummaryResponse resumen del tablero para el período consultado.
type SummaryResponse struct {
	TotalProducts      int64 `json:"total_products"`
	LowStockProducts   int64 `json:"low_stock_products"`
	OutOfStockProducts int64 `json:"out_of_stock_products"`
	TotalMovements     int64 `json:"total_movements"`
}

// LowStockProductResponse producto bajo su umbral de reorden.
// Percentage = round(quantity / min_quantity * 100).
type LowStockProductResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Quantity    int64  `json:"quantity"`
	MinQuantity int64  `json:"min_quantity"`
	Percentage  int64  `json:"percentage"`
}

// StockValueResponse valorización del inventario.
type StockValueResponse struct {
	TotalValue       decimal.Decimal `json:"total_value"`       // a costo
	AverageCost      decimal.Decimal `json:"average_cost"`      // costo promedio por unidad
	PotentialRevenue decimal.Decimal `json:"potential_revenue"` // a precio de venta
	Margin           decimal.Decimal `json:"margin"`
}

// CategoryStatResponse productos y valorización por categoría.
type CategoryStatResponse struct {
	Name  string          `json:"name"`
	Count int64           `json:"count"`
	Value decimal.Decimal `json:"value"`
}

// MovementStatPoint punto de la serie temporal de movimientos.
// Adjustment acumula valores absolutos (los deltas pueden ser negativos).
type MovementStatPoint struct {
	Date       string `json:"date"`
	In         int64  `json:"in"`
	Out        int64  `json:"out"`
	Adjustment int64  `json:"adjustment"`
}
