package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario.
// Quantity es un agregado cacheado: debe ser igual al efecto neto de todos los
// movimientos aplicados; la fuente de verdad es el historial de movimientos y
// la reconciliación (recompute) es la herramienta de reparación explícita.
type Product struct {
	ID          int64
	Name        string
	Description string
	Quantity    int64 // stock actual cacheado, nunca negativo
	MinQuantity int64 // umbral de reorden
	UnitPrice   decimal.Decimal
	CostPrice   decimal.Decimal
	CategoryID  int64
	SupplierID  int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsLowStock indica si el producto está por debajo de su umbral de reorden
// (pero no agotado).
func (p *Product) IsLowStock() bool {
	return p.Quantity > 0 && p.Quantity < p.MinQuantity
}
