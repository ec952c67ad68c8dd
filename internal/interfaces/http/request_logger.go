package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/artsiders/next-stock/pkg/logger"
)

// RequestIDHeader cabecera con el identificador de la petición.
const RequestIDHeader = "X-Request-Id"

// RequestLogger middleware que asigna un id a cada petición y la registra
// al terminar con método, ruta, estado y duración.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqID := c.Get(RequestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Set(RequestIDHeader, reqID)
		c.Locals("request_id", reqID)

		start := time.Now()
		err := c.Next()

		ev := log.Info()
		if err != nil || c.Response().StatusCode() >= fiber.StatusInternalServerError {
			ev = log.Error()
		}
		ev.Str("request_id", reqID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(start)).
			Err(err).
			Msg("petición HTTP")

		return err
	}
}
