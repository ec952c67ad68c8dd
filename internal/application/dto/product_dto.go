package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. Quantity es el stock
// inicial; después del alta solo se mueve vía movimientos.
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description"`
	Quantity    int64           `json:"quantity" validate:"min=0"`
	MinQuantity int64           `json:"min_quantity" validate:"min=0"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	CostPrice   decimal.Decimal `json:"cost_price"`
	CategoryID  int64           `json:"category_id" validate:"required"`
	SupplierID  int64           `json:"supplier_id" validate:"required"`
}

// UpdateProductRequest entrada para actualizar un producto (sin Quantity, que
// se maneja vía movimientos o reconciliación).
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description"`
	MinQuantity *int64           `json:"min_quantity" validate:"omitempty,min=0"`
	UnitPrice   *decimal.Decimal `json:"unit_price"`
	CostPrice   *decimal.Decimal `json:"cost_price"`
	CategoryID  *int64           `json:"category_id"`
	SupplierID  *int64           `json:"supplier_id"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Quantity     int64           `json:"quantity"`
	MinQuantity  int64           `json:"min_quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	CategoryID   int64           `json:"category_id"`
	SupplierID   int64           `json:"supplier_id"`
	CategoryName string          `json:"category_name,omitempty"`
	SupplierName string          `json:"supplier_name,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
