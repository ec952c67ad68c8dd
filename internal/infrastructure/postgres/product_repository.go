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

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, description, quantity, min_quantity, unit_price, cost_price, category_id, supplier_id, created_at, updated_at`

// ProductRepo implementación de ProductRepository sobre PostgreSQL (usable
// con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de productos. Pasar pool o tx
// (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto y asigna el ID generado.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (name, description, quantity, min_quantity, unit_price, cost_price, category_id, supplier_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	description := (*string)(nil)
	if product.Description != "" {
		description = &product.Description
	}
	err := r.q.QueryRow(context.Background(), query,
		product.Name, description, product.Quantity, product.MinQuantity,
		product.UnitPrice, product.CostPrice, product.CategoryID, product.SupplierID,
		product.CreatedAt, product.UpdatedAt,
	).Scan(&product.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.scanOne(query, id)
}

// GetForUpdate obtiene el producto bloqueando su fila (SELECT FOR UPDATE)
// para serializar el read-modify-write del stock cacheado. Solo dentro de una
// transacción.
func (r *ProductRepo) GetForUpdate(id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`
	return r.scanOne(query, id)
}

// List lista productos con su categoría y proveedor, orden alfabético.
func (r *ProductRepo) List(limit, offset int) ([]*repository.ProductWithRelations, error) {
	query := `
		SELECT p.id, p.name, p.description, p.quantity, p.min_quantity, p.unit_price, p.cost_price,
		       p.category_id, p.supplier_id, p.created_at, p.updated_at, c.name, s.name
		FROM products p
		JOIN categories c ON c.id = p.category_id
		JOIN suppliers  s ON s.id = p.supplier_id
		ORDER BY p.name ASC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*repository.ProductWithRelations
	for rows.Next() {
		var p repository.ProductWithRelations
		var description *string
		if err := rows.Scan(&p.ID, &p.Name, &description, &p.Quantity, &p.MinQuantity,
			&p.UnitPrice, &p.CostPrice, &p.CategoryID, &p.SupplierID,
			&p.CreatedAt, &p.UpdatedAt, &p.CategoryName, &p.SupplierName); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		if description != nil {
			p.Description = *description
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza los atributos del producto excepto quantity, que solo se
// mueve vía movimientos o reconciliación.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, description = $3, min_quantity = $4, unit_price = $5,
		    cost_price = $6, category_id = $7, supplier_id = $8, updated_at = $9
		WHERE id = $1`
	description := (*string)(nil)
	if product.Description != "" {
		description = &product.Description
	}
	cmd, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, description, product.MinQuantity,
		product.UnitPrice, product.CostPrice, product.CategoryID, product.SupplierID,
		product.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateQuantity escribe el stock cacheado. Se invoca dentro de la misma
// transacción que la escritura del movimiento.
func (r *ProductRepo) UpdateQuantity(id, quantity int64) error {
	query := `UPDATE products SET quantity = $2, updated_at = now() WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query, id, quantity)
	if err != nil {
		return fmt.Errorf("update product quantity: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un producto. La FK de movimientos es RESTRICT: si existen
// movimientos la violación se reporta como ErrConflict.
func (r *ProductRepo) Delete(id int64) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProductRepo) scanOne(query string, args ...any) (*entity.Product, error) {
	var p entity.Product
	var description *string
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&p.ID, &p.Name, &description, &p.Quantity, &p.MinQuantity,
		&p.UnitPrice, &p.CostPrice, &p.CategoryID, &p.SupplierID,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	if description != nil {
		p.Description = *description
	}
	return &p, nil
}
