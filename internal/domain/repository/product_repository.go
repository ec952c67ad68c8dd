package repository

import "github.com/artsiders/next-stock/internal/domain/entity"

// ProductWithRelations producto con los nombres de su categoría y proveedor
// (para listados, como los devuelve la API).
type ProductWithRelations struct {
	entity.Product
	CategoryName string
	SupplierName string
}

// ProductRepository puerto de persistencia para productos.
// Las implementaciones devuelven (nil, nil) cuando el producto no existe.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	// GetForUpdate obtiene el producto bloqueando su fila (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción.
	GetForUpdate(id int64) (*entity.Product, error)
	List(limit, offset int) ([]*ProductWithRelations, error)
	// Update actualiza los atributos del producto excepto Quantity, que solo
	// se mueve vía movimientos o reconciliación.
	Update(product *entity.Product) error
	// UpdateQuantity escribe el stock cacheado. Debe poder ejecutarse dentro
	// de la misma transacción que la escritura del movimiento.
	UpdateQuantity(id, quantity int64) error
	// Delete elimina el producto. Devuelve domain.ErrConflict si existen
	// movimientos que lo referencian.
	Delete(id int64) error
}
