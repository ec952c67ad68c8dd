package dto

import "time"

// CreateMovementRequest body para POST /api/stockmovements.
// Quantity es magnitud positiva para IN/OUT; para ADJUSTMENT es un delta con
// signo. Date es opcional (por defecto, ahora) y puede retrodatarse.
type CreateMovementRequest struct {
	ProductID int64      `json:"product_id" validate:"required"`
	Type      string     `json:"type" validate:"required,oneof=IN OUT ADJUSTMENT"`
	Quantity  int64      `json:"quantity" validate:"required"`
	Date      *time.Time `json:"date,omitempty"`
	Note      string     `json:"note,omitempty"`
}

// MovementResponse salida de un movimiento de stock.
type MovementResponse struct {
	ID          int64     `json:"id"`
	ProductID   int64     `json:"product_id"`
	ProductName string    `json:"product_name,omitempty"`
	Type        string    `json:"type"`
	Quantity    int64     `json:"quantity"`
	Date        time.Time `json:"date"`
	Note        string    `json:"note,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// MovementListResponse lista paginada de movimientos (fecha descendente).
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
