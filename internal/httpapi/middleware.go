package httpapi

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
)

// requestLogging logs method, path, status and duration for every request.
func requestLogging(log *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}
		log.Info("request",
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"duration", time.Since(start).String(),
		)
		return err
	}
}
