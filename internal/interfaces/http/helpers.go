package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// parseID lee el parámetro de ruta :id como entero positivo.
func parseID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// clampLimit acota el tamaño de página de los listados.
func clampLimit(limit int) int {
	if limit <= 0 {
		return 20
	}
	if limit > 100 {
		return 100
	}
	return limit
}
