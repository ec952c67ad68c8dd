package http

import (
	"errors"
	"strconv"

	"github.com/araddon/dateparse"
	"github.com/gofiber/fiber/v2"

	"github.com/artsiders/next-stock/internal/application/dto"
	"github.com/artsiders/next-stock/internal/application/stock"
	"github.com/artsiders/next-stock/internal/domain"
	"github.com/artsiders/next-stock/internal/domain/entity"
	"github.com/artsiders/next-stock/internal/domain/repository"
)

// MovementHandler maneja las peticiones HTTP del libro de movimientos.
type MovementHandler struct {
	uc *stock.MovementUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *stock.MovementUseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar movimiento de stock
// @Tags         stockmovements
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMovementRequest  true  "product_id, type (IN|OUT|ADJUSTMENT), quantity, date (opcional), note (opcional)"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stockmovements [post]
func (h *MovementHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateMovement(c.Context(), in)
	if err != nil {
		return movementError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener movimiento por ID
// @Tags         stockmovements
// @Produce      json
// @Param        id   path  int  true  "ID del movimiento"
// @Success      200  {object}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stockmovements/{id} [get]
func (h *MovementHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	out, err := h.uc.GetMovement(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "movimiento no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Deshacer movimiento (borra el registro y revierte su efecto)
// @Tags         stockmovements
// @Produce      json
// @Param        id   path  int  true  "ID del movimiento"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stockmovements/{id} [delete]
func (h *MovementHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	if err := h.uc.DeleteMovement(c.Context(), id); err != nil {
		return movementError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

// List godoc
// @Summary      Listar movimientos (fecha descendente)
// @Tags         stockmovements
// @Produce      json
// @Param        product_id  query  int     false  "Filtrar por producto"
// @Param        type        query  string  false  "IN, OUT o ADJUSTMENT"
// @Param        from        query  string  false  "Fecha mínima"
// @Param        to          query  string  false  "Fecha máxima"
// @Param        limit       query  int     false  "Límite"   default(20)
// @Param        offset      query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.MovementListResponse
// @Router       /api/stockmovements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	filter := repository.MovementFilter{
		Limit:  clampLimit(c.QueryInt("limit", 20)),
		Offset: c.QueryInt("offset", 0),
	}
	if raw := c.Query("product_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILTER", Message: "product_id inválido"})
		}
		filter.ProductID = &id
	}
	if movType := c.Query("type"); movType != "" {
		if !entity.ValidMovementType(movType) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILTER", Message: "type inválido"})
		}
		filter.Type = movType
	}
	if raw := c.Query("from"); raw != "" {
		t, err := dateparse.ParseAny(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILTER", Message: "from inválido"})
		}
		filter.From = &t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := dateparse.ParseAny(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILTER", Message: "to inválido"})
		}
		filter.To = &t
	}
	out, err := h.uc.ListMovements(filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Recompute godoc
// @Summary      Reconciliar el stock de un producto desde su historial
// @Description  Reproduce todos los movimientos del producto y sobreescribe
//               la cantidad cacheada. Operación idempotente de reparación.
// @Tags         products
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/recompute [post]
func (h *MovementHandler) Recompute(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	out, err := h.uc.RecomputeQuantity(c.Context(), id)
	if err != nil {
		return movementError(c, err)
	}
	return c.JSON(out)
}

// movementError mapea errores de dominio del motor de stock a HTTP.
func movementError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo o cantidad inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto o movimiento no encontrado"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "conflicto de concurrencia, reintente"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
