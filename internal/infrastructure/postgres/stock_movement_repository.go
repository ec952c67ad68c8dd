package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/artsiders/next-stock/internal/domain"
	"github.com/artsiders/next-stock/internal/domain/entity"
	"github.com/artsiders/next-stock/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación del libro de movimientos sobre PostgreSQL
// (usable con pool o tx).
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx
// (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create persiste un movimiento y asigna el ID generado.
func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (product_id, type, quantity, date, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	note := (*string)(nil)
	if movement.Note != "" {
		note = &movement.Note
	}
	err := r.q.QueryRow(context.Background(), query,
		movement.ProductID, movement.Type, movement.Quantity,
		movement.Date, note, movement.CreatedAt,
	).Scan(&movement.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("create stock movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID. Devuelve (nil, nil) si no existe.
func (r *StockMovementRepo) GetByID(id int64) (*entity.StockMovement, error) {
	query := `
		SELECT id, product_id, type, quantity, date, note, created_at
		FROM stock_movements WHERE id = $1`
	var m entity.StockMovement
	var note *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.ProductID, &m.Type, &m.Quantity, &m.Date, &note, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	if note != nil {
		m.Note = *note
	}
	return &m, nil
}

// Delete borra un movimiento (el efecto inverso sobre el stock lo aplica el
// caso de uso dentro de la misma transacción).
func (r *StockMovementRepo) Delete(id int64) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM stock_movements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete movement: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista movimientos con el nombre del producto, fecha descendente, con
// filtros opcionales por producto, tipo y rango de fechas.
func (r *StockMovementRepo) List(filter repository.MovementFilter) ([]*repository.MovementWithProduct, error) {
	query := `
		SELECT m.id, m.product_id, m.type, m.quantity, m.date, m.note, m.created_at, p.name
		FROM stock_movements m
		JOIN products p ON p.id = m.product_id
		WHERE 1=1`
	var args []any
	pos := 1
	if filter.ProductID != nil {
		query += fmt.Sprintf(" AND m.product_id = $%d", pos)
		args = append(args, *filter.ProductID)
		pos++
	}
	if filter.Type != "" {
		query += fmt.Sprintf(" AND m.type = $%d", pos)
		args = append(args, filter.Type)
		pos++
	}
	if filter.From != nil {
		query += fmt.Sprintf(" AND m.date >= $%d", pos)
		args = append(args, *filter.From)
		pos++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND m.date <= $%d", pos)
		args = append(args, *filter.To)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY m.date DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var list []*repository.MovementWithProduct
	for rows.Next() {
		var m repository.MovementWithProduct
		var note *string
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Type, &m.Quantity,
			&m.Date, &note, &m.CreatedAt, &m.ProductName); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		if note != nil {
			m.Note = *note
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// ListAllByProduct devuelve el historial completo de un producto para el
// replay de reconciliación (orden cronológico, sin paginación).
func (r *StockMovementRepo) ListAllByProduct(productID int64) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, product_id, type, quantity, date, note, created_at
		FROM stock_movements WHERE product_id = $1
		ORDER BY date ASC, id ASC`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list movements by product: %w", err)
	}
	defer rows.Close()

	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		var note *string
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Type, &m.Quantity,
			&m.Date, &note, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		if note != nil {
			m.Note = *note
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
