package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artsiders/next-stock/internal/domain/repository"
)

var _ repository.StatisticsRepository = (*StatisticsRepo)(nil)

// StatisticsRepo consultas de solo lectura para el tablero. Opera sobre el
// pool directamente: no bloquea filas ni participa en transacciones.
type StatisticsRepo struct {
	pool *pgxpool.Pool
}

// NewStatisticsRepository construye el adaptador de estadísticas.
func NewStatisticsRepository(pool *pgxpool.Pool) *StatisticsRepo {
	return &StatisticsRepo{pool: pool}
}

// Summary devuelve los contadores del tablero en una sola consulta.
// Stock bajo = 0 < quantity < min_quantity; agotado = quantity = 0.
func (r *StatisticsRepo) Summary(ctx context.Context, movementsSince time.Time) (*repository.SummaryCounts, error) {
	const query = `
	SELECT
	    (SELECT COUNT(*) FROM products)                                              AS total_products,
	    (SELECT COUNT(*) FROM products WHERE quantity > 0 AND quantity < min_quantity) AS low_stock,
	    (SELECT COUNT(*) FROM products WHERE quantity = 0)                           AS out_of_stock,
	    (SELECT COUNT(*) FROM stock_movements WHERE date >= $1)                      AS total_movements`
	var c repository.SummaryCounts
	err := r.pool.QueryRow(ctx, query, movementsSince).Scan(
		&c.TotalProducts, &c.LowStockProducts, &c.OutOfStockProducts, &c.TotalMovements,
	)
	if err != nil {
		return nil, fmt.Errorf("statistics.Summary: %w", err)
	}
	return &c, nil
}

// ListLowStock devuelve los productos bajo su umbral de reorden, los de menor
// stock primero.
func (r *StatisticsRepo) ListLowStock(ctx context.Context, limit int) ([]repository.LowStockRow, error) {
	const query = `
	SELECT id, name, quantity, min_quantity
	FROM products
	WHERE quantity > 0 AND quantity < min_quantity
	ORDER BY quantity ASC
	LIMIT $1`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("statistics.ListLowStock: %w", err)
	}
	defer rows.Close()

	var results []repository.LowStockRow
	for rows.Next() {
		var row repository.LowStockRow
		if err := rows.Scan(&row.ID, &row.Name, &row.Quantity, &row.MinQuantity); err != nil {
			return nil, fmt.Errorf("statistics.ListLowStock scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// StockValue totales de valorización. COALESCE devuelve cero con inventario
// vacío.
func (r *StatisticsRepo) StockValue(ctx context.Context) (*repository.StockValue, error) {
	const query = `
	SELECT
	    COALESCE(SUM(quantity * cost_price), 0) AS total_cost,
	    COALESCE(SUM(quantity * unit_price), 0) AS total_revenue,
	    COALESCE(SUM(quantity), 0)              AS total_units
	FROM products`
	var v repository.StockValue
	err := r.pool.QueryRow(ctx, query).Scan(&v.TotalCost, &v.TotalRevenue, &v.TotalUnits)
	if err != nil {
		return nil, fmt.Errorf("statistics.StockValue: %w", err)
	}
	return &v, nil
}

// CategoryStats productos y valorización a costo por categoría; incluye
// categorías sin productos.
func (r *StatisticsRepo) CategoryStats(ctx context.Context) ([]repository.CategoryStat, error) {
	const query = `
	SELECT
	    c.name,
	    COUNT(p.id)                               AS product_count,
	    COALESCE(SUM(p.quantity * p.cost_price), 0) AS value
	FROM categories c
	LEFT JOIN products p ON p.category_id = c.id
	GROUP BY c.id, c.name
	ORDER BY c.name ASC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("statistics.CategoryStats: %w", err)
	}
	defer rows.Close()

	var results []repository.CategoryStat
	for rows.Next() {
		var row repository.CategoryStat
		if err := rows.Scan(&row.Name, &row.Count, &row.Value); err != nil {
			return nil, fmt.Errorf("statistics.CategoryStats scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// MovementsBetween devuelve los movimientos crudos del rango; la agrupación
// por intervalo se hace en la capa de aplicación.
func (r *StatisticsRepo) MovementsBetween(ctx context.Context, from, to time.Time) ([]repository.MovementPoint, error) {
	const query = `
	SELECT date, type, quantity
	FROM stock_movements
	WHERE date >= $1 AND date < $2
	ORDER BY date ASC`
	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("statistics.MovementsBetween: %w", err)
	}
	defer rows.Close()

	var results []repository.MovementPoint
	for rows.Next() {
		var row repository.MovementPoint
		if err := rows.Scan(&row.Date, &row.Type, &row.Quantity); err != nil {
			return nil, fmt.Errorf("statistics.MovementsBetween scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
