package repository

import "github.com/artsiders/next-stock/internal/domain/entity"

// CategoryRepository puerto de persistencia para categorías.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id int64) (*entity.Category, error)
	GetByName(name string) (*entity.Category, error)
	List() ([]*entity.Category, error)
	Update(category *entity.Category) error
	// Delete devuelve domain.ErrConflict si la categoría tiene productos.
	Delete(id int64) error
}
