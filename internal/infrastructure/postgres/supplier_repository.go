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

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

const supplierColumns = `id, name, email, phone, address, created_at, updated_at`

// SupplierRepo implementación de SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador de proveedores.
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Create persiste un proveedor y asigna el ID generado.
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (name, email, phone, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		supplier.Name, nullable(supplier.Email), nullable(supplier.Phone),
		nullable(supplier.Address), supplier.CreatedAt, supplier.UpdatedAt,
	).Scan(&supplier.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID. Devuelve (nil, nil) si no existe.
func (r *SupplierRepo) GetByID(id int64) (*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByName busca por nombre sin distinguir mayúsculas.
func (r *SupplierRepo) GetByName(name string) (*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE lower(name) = lower($1)`
	return r.scanOne(query, name)
}

// List lista todos los proveedores, orden alfabético.
func (r *SupplierRepo) List() ([]*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers ORDER BY name ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()

	var list []*entity.Supplier
	for rows.Next() {
		s, err := scanSupplier(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Update actualiza un proveedor.
func (r *SupplierRepo) Update(supplier *entity.Supplier) error {
	query := `
		UPDATE suppliers
		SET name = $2, email = $3, phone = $4, address = $5, updated_at = $6
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		supplier.ID, supplier.Name, nullable(supplier.Email),
		nullable(supplier.Phone), nullable(supplier.Address), supplier.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update supplier: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un proveedor; ErrConflict si tiene productos.
func (r *SupplierRepo) Delete(id int64) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete supplier: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *SupplierRepo) scanOne(query string, args ...any) (*entity.Supplier, error) {
	s, err := scanSupplier(r.q.QueryRow(context.Background(), query, args...).Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return s, nil
}

func scanSupplier(scan func(dest ...any) error) (*entity.Supplier, error) {
	var s entity.Supplier
	var email, phone, address *string
	if err := scan(&s.ID, &s.Name, &email, &phone, &address, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	if email != nil {
		s.Email = *email
	}
	if phone != nil {
		s.Phone = *phone
	}
	if address != nil {
		s.Address = *address
	}
	return &s, nil
}

// nullable convierte "" en NULL para columnas opcionales.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
