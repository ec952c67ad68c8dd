package repository

import (
	"time"

	"github.com/artsiders/next-stock/internal/domain/entity"
)

// MovementFilter filtros opcionales para listar movimientos.
type MovementFilter struct {
	ProductID *int64
	Type      string
	From      *time.Time
	To        *time.Time
	Limit     int
	Offset    int
}

// MovementWithProduct movimiento con el nombre del producto afectado.
type MovementWithProduct struct {
	entity.StockMovement
	ProductName string
}

// StockMovementRepository puerto de persistencia para el libro de movimientos.
// Los movimientos solo se crean y se borran; nunca se actualizan.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	GetByID(id int64) (*entity.StockMovement, error)
	Delete(id int64) error
	// List devuelve movimientos ordenados por fecha descendente.
	List(filter MovementFilter) ([]*MovementWithProduct, error)
	// ListAllByProduct devuelve el historial completo de un producto, sin
	// paginación, para el replay de reconciliación.
	ListAllByProduct(productID int64) ([]*entity.StockMovement, error)
}
