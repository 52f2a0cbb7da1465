package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/jhoicas/gapc-api/internal/infrastructure/metrics"
	"github.com/jhoicas/gapc-api/pkg/logger"
)

// RequestObserver registra cada petición en Prometheus y en el log de acceso.
// Usa la plantilla de la ruta (/api/groups/:id) para no multiplicar series por ID.
func RequestObserver(m *metrics.Metrics, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		if err != nil {
			// Deja que el ErrorHandler de Fiber fije el status antes de medir.
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		elapsed := time.Since(start)
		status := c.Response().StatusCode()
		route := c.Route().Path

		m.ObserveRequest(c.Method(), route, status, elapsed)
		if log != nil {
			log.Debug().
				Str("method", c.Method()).
				Str("route", route).
				Int("status", status).
				Dur("elapsed", elapsed).
				Msg("petición")
		}
		return nil
	}
}

// MetricsHandler expone el registro Prometheus en Fiber.
func MetricsHandler(m *metrics.Metrics) fiber.Handler {
	return adaptor.HTTPHandler(m.Handler())
}
