package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aaronromeo/wodtimer/internal/config"
	"github.com/aaronromeo/wodtimer/internal/plan"
	"github.com/aaronromeo/wodtimer/internal/session"
	"github.com/gofiber/fiber/v2"
)

type api struct {
	log       *slog.Logger
	sessions  *session.Store
	maxRounds int
}

func NewServer(cfg *config.Config, logger *slog.Logger) *fiber.App {
	return newServer(cfg, logger, session.NewStore())
}

func newServer(cfg *config.Config, logger *slog.Logger, store *session.Store) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
	})
	a := &api{log: logger, sessions: store, maxRounds: cfg.MaxRounds}

	app.Use(requestLogging(logger))
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) })
	app.Get("/schema", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, "application/schema+json")
		return c.SendString(plan.Schema)
	})
	registerCalculate(app, a)
	registerSessions(app, a)
	return app
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, session.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, plan.ErrTooManyRounds):
		return http.StatusUnprocessableEntity
	}
	return http.StatusBadRequest
}

func fail(c *fiber.Ctx, err error) error {
	return c.Status(errorStatus(err)).JSON(fiber.Map{"error": err.Error()})
}
