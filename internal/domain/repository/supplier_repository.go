package repository

import "github.com/artsiders/next-stock/internal/domain/entity"

// SupplierRepository puerto de persistencia para proveedores.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id int64) (*entity.Supplier, error)
	// GetByName busca sin distinguir mayúsculas (la unicidad del nombre se
	// valida así en el alta).
	GetByName(name string) (*entity.Supplier, error)
	List() ([]*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	// Delete devuelve domain.ErrConflict si el proveedor tiene productos.
	Delete(id int64) error
}
