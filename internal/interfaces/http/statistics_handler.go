package http

import (
	"time"

	"github.com/araddon/dateparse"
	"github.com/gofiber/fiber/v2"

	"github.com/artsiders/next-stock/internal/application/dto"
	"github.com/artsiders/next-stock/internal/application/usecase"
)

// StatisticsHandler maneja las peticiones HTTP del tablero de estadísticas.
type StatisticsHandler struct {
	uc *usecase.StatisticsUseCase
}

// NewStatisticsHandler construye el handler.
func NewStatisticsHandler(uc *usecase.StatisticsUseCase) *StatisticsHandler {
	return &StatisticsHandler{uc: uc}
}

// parsePeriod valida el query param period; por defecto month.
func parsePeriod(c *fiber.Ctx) (string, bool) {
	period := c.Query("period", usecase.PeriodMonth)
	switch period {
	case usecase.PeriodDay, usecase.PeriodWeek, usecase.PeriodMonth, usecase.PeriodYear:
		return period, true
	}
	return "", false
}

// parseDate lee el query param date en cualquier formato razonable; por
// defecto la fecha actual.
func parseDate(c *fiber.Ctx) (time.Time, bool) {
	raw := c.Query("date")
	if raw == "" {
		return time.Now(), true
	}
	t, err := dateparse.ParseAny(raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Summary godoc
// @Summary      Resumen del tablero
// @Tags         statistics
// @Produce      json
// @Param        period  query  string  false  "day, week, month o year"  default(month)
// @Param        date    query  string  false  "Fecha de referencia"
// @Success      200  {object}  dto.SummaryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/statistics/summary [get]
func (h *StatisticsHandler) Summary(c *fiber.Ctx) error {
	period, ok := parsePeriod(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "período inválido"})
	}
	date, ok := parseDate(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha inválida"})
	}
	out, err := h.uc.Summary(c.Context(), period, date)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// LowStock godoc
// @Summary      Productos con stock bajo
// @Tags         statistics
// @Produce      json
// @Success      200  {array}  dto.LowStockProductResponse
// @Router       /api/statistics/lowstock [get]
func (h *StatisticsHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.uc.LowStock(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// StockValue godoc
// @Summary      Valorización del inventario
// @Tags         statistics
// @Produce      json
// @Success      200  {object}  dto.StockValueResponse
// @Router       /api/statistics/value [get]
func (h *StatisticsHandler) StockValue(c *fiber.Ctx) error {
	out, err := h.uc.StockValue(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Categories godoc
// @Summary      Productos y valorización por categoría
// @Tags         statistics
// @Produce      json
// @Success      200  {array}  dto.CategoryStatResponse
// @Router       /api/statistics/categories [get]
func (h *StatisticsHandler) Categories(c *fiber.Ctx) error {
	out, err := h.uc.CategoryStats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Movements godoc
// @Summary      Serie temporal de movimientos
// @Tags         statistics
// @Produce      json
// @Param        period  query  string  false  "day, week, month o year"  default(month)
// @Param        date    query  string  false  "Fecha de referencia"
// @Success      200  {array}   dto.MovementStatPoint
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/statistics/movements [get]
func (h *StatisticsHandler) Movements(c *fiber.Ctx) error {
	period, ok := parsePeriod(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "período inválido"})
	}
	date, ok := parseDate(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha inválida"})
	}
	out, err := h.uc.MovementSeries(c.Context(), period, date)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
