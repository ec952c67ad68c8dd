package usecase

import (
	"time"

	"github.com/artsiders/next-stock/internal/application/dto"
	"github.com/artsiders/next-stock/internal/domain"
	"github.com/artsiders/next-stock/internal/domain/entity"
	"github.com/artsiders/next-stock/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. Quantity solo se fija en
// el alta; después se mueve vía movimientos o reconciliación.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	supplierRepo repository.SupplierRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	supplierRepo repository.SupplierRepository,
) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo, supplierRepo: supplierRepo}
}

// Create crea un producto con su stock inicial. Verifica que la categoría y
// el proveedor existan.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Quantity < 0 || in.MinQuantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.UnitPrice.IsNegative() || in.CostPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.checkRelations(in.CategoryID, in.SupplierID); err != nil {
		return nil, err
	}
	now := time.Now()
	product := &entity.Product{
		Name:        in.Name,
		Description: in.Description,
		Quantity:    in.Quantity,
		MinQuantity: in.MinQuantity,
		UnitPrice:   in.UnitPrice,
		CostPrice:   in.CostPrice,
		CategoryID:  in.CategoryID,
		SupplierID:  in.SupplierID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil || product == nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update actualiza los atributos del producto. No toca Quantity.
func (uc *ProductUseCase) Update(id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.MinQuantity != nil {
		if *in.MinQuantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.MinQuantity = *in.MinQuantity
	}
	if in.UnitPrice != nil {
		if in.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.UnitPrice = *in.UnitPrice
	}
	if in.CostPrice != nil {
		if in.CostPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.CostPrice = *in.CostPrice
	}
	if in.CategoryID != nil {
		product.CategoryID = *in.CategoryID
	}
	if in.SupplierID != nil {
		product.SupplierID = *in.SupplierID
	}
	if in.CategoryID != nil || in.SupplierID != nil {
		if err := uc.checkRelations(product.CategoryID, product.SupplierID); err != nil {
			return nil, err
		}
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto. Bloqueado mientras existan movimientos que lo
// referencien (el repo lo reporta como ErrConflict).
func (uc *ProductUseCase) Delete(id int64) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// List lista productos (orden alfabético) con su categoría y proveedor.
func (uc *ProductUseCase) List(limit, offset int) (*dto.ProductListResponse, error) {
	items, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.ProductListResponse{
		Items: make([]dto.ProductResponse, 0, len(items)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
	for _, p := range items {
		resp := toProductResponse(&p.Product)
		resp.CategoryName = p.CategoryName
		resp.SupplierName = p.SupplierName
		out.Items = append(out.Items, *resp)
	}
	return out, nil
}

func (uc *ProductUseCase) checkRelations(categoryID, supplierID int64) error {
	category, err := uc.categoryRepo.GetByID(categoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	supplier, err := uc.supplierRepo.GetByID(supplierID)
	if err != nil {
		return err
	}
	if supplier == nil {
		return domain.ErrNotFound
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Quantity:    p.Quantity,
		MinQuantity: p.MinQuantity,
		UnitPrice:   p.UnitPrice,
		CostPrice:   p.CostPrice,
		CategoryID:  p.CategoryID,
		SupplierID:  p.SupplierID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
