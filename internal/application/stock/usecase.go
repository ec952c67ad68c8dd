package stock

import (
	"context"
	"errors"
	"time"

	"github.com/artsiders/next-stock/internal/application/dto"
	"github.com/artsiders/next-stock/internal/domain"
	"github.com/artsiders/next-stock/internal/domain/entity"
	"github.com/artsiders/next-stock/internal/domain/repository"
	domstock "github.com/artsiders/next-stock/internal/domain/stock"
)

// MovementUseCase registra, deshace y reconcilia movimientos de stock de
// forma transaccional, con bloqueo de la fila del producto
// (SELECT FOR UPDATE) para serializar el read-modify-write del stock cacheado
// frente a peticiones concurrentes sobre el mismo producto.
type MovementUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	movRepo     repository.StockMovementRepository
}

// NewMovementUseCase construye el caso de uso. productRepo y movRepo se usan
// para las lecturas fuera de transacción; las escrituras siempre pasan por
// los repositorios atados a la tx que entrega el TxRunner.
func NewMovementUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	movRepo repository.StockMovementRepository,
) *MovementUseCase {
	return &MovementUseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		movRepo:     movRepo,
	}
}

// CreateMovement valida y aplica un movimiento: inserta el registro en el
// libro y actualiza el stock cacheado del producto en una sola transacción.
// Toda la validación ocurre antes de cualquier escritura.
func (uc *MovementUseCase) CreateMovement(ctx context.Context, in dto.CreateMovementRequest) (*dto.MovementResponse, error) {
	if err := domstock.Validate(in.Type, in.Quantity); err != nil {
		return nil, err
	}
	// Existencia del producto antes de abrir la transacción; se vuelve a leer
	// con bloqueo dentro de ella.
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	date := now
	if in.Date != nil {
		date = *in.Date
	}
	movement := &entity.StockMovement{
		ProductID: in.ProductID,
		Type:      in.Type,
		Quantity:  in.Quantity,
		Date:      date,
		Note:      in.Note,
		CreatedAt: now,
	}

	err = uc.runWithRetry(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		locked, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if locked == nil {
			return domain.ErrNotFound
		}
		newQuantity, err := domstock.Apply(locked.Quantity, in.Type, in.Quantity)
		if err != nil {
			return err
		}
		if err := movRepo.Create(movement); err != nil {
			return err
		}
		return productRepo.UpdateQuantity(in.ProductID, newQuantity)
	})
	if err != nil {
		return nil, err
	}
	return toMovementResponse(movement), nil
}

// DeleteMovement deshace un movimiento: borra el registro y aplica el efecto
// inverso sobre el stock cacheado, en una sola transacción. Si el movimiento
// no existe no se escribe nada.
func (uc *MovementUseCase) DeleteMovement(ctx context.Context, id int64) error {
	return uc.runWithRetry(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		movement, err := movRepo.GetByID(id)
		if err != nil {
			return err
		}
		if movement == nil {
			return domain.ErrNotFound
		}
		locked, err := productRepo.GetForUpdate(movement.ProductID)
		if err != nil {
			return err
		}
		if locked == nil {
			return domain.ErrNotFound
		}
		newQuantity := domstock.Reverse(locked.Quantity, movement.Type, movement.Quantity)
		if err := movRepo.Delete(id); err != nil {
			return err
		}
		return productRepo.UpdateQuantity(movement.ProductID, newQuantity)
	})
}

// RecomputeQuantity reproduce el historial completo del producto y
// sobreescribe el stock cacheado con el resultado. Es la operación
// autoritativa de reparación ante cualquier deriva; idempotente.
func (uc *MovementUseCase) RecomputeQuantity(ctx context.Context, productID int64) (*dto.ProductResponse, error) {
	var out *dto.ProductResponse
	err := uc.runWithRetry(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		product, err := productRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		history, err := movRepo.ListAllByProduct(productID)
		if err != nil {
			return err
		}
		product.Quantity = domstock.Replay(history)
		if err := productRepo.UpdateQuantity(productID, product.Quantity); err != nil {
			return err
		}
		out = &dto.ProductResponse{
			ID:          product.ID,
			Name:        product.Name,
			Description: product.Description,
			Quantity:    product.Quantity,
			MinQuantity: product.MinQuantity,
			UnitPrice:   product.UnitPrice,
			CostPrice:   product.CostPrice,
			CategoryID:  product.CategoryID,
			SupplierID:  product.SupplierID,
			CreatedAt:   product.CreatedAt,
			UpdatedAt:   product.UpdatedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetMovement obtiene un movimiento por ID. Devuelve (nil, nil) si no existe.
func (uc *MovementUseCase) GetMovement(id int64) (*dto.MovementResponse, error) {
	movement, err := uc.movRepo.GetByID(id)
	if err != nil || movement == nil {
		return nil, err
	}
	return toMovementResponse(movement), nil
}

// ListMovements lista movimientos (fecha descendente) con filtros opcionales.
func (uc *MovementUseCase) ListMovements(filter repository.MovementFilter) (*dto.MovementListResponse, error) {
	items, err := uc.movRepo.List(filter)
	if err != nil {
		return nil, err
	}
	out := &dto.MovementListResponse{
		Items: make([]dto.MovementResponse, 0, len(items)),
		Page:  dto.PageResponse{Limit: filter.Limit, Offset: filter.Offset},
	}
	for _, m := range items {
		resp := toMovementResponse(&m.StockMovement)
		resp.ProductName = m.ProductName
		out.Items = append(out.Items, *resp)
	}
	return out, nil
}

// runWithRetry ejecuta la transacción y reintenta una única vez si el storage
// reporta un fallo de serialización (deadlock entre dos apply concurrentes).
func (uc *MovementUseCase) runWithRetry(ctx context.Context, fn func(
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	err := uc.txRunner.Run(ctx, fn)
	if errors.Is(err, domain.ErrConflict) {
		err = uc.txRunner.Run(ctx, fn)
	}
	return err
}

func toMovementResponse(m *entity.StockMovement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:        m.ID,
		ProductID: m.ProductID,
		Type:      m.Type,
		Quantity:  m.Quantity,
		Date:      m.Date,
		Note:      m.Note,
		CreatedAt: m.CreatedAt,
	}
}
