package httpapi

import (
	"fmt"
	"net/http"

	"github.com/aaronromeo/wodtimer/internal/plan"
	"github.com/aaronromeo/wodtimer/internal/report"
	"github.com/aaronromeo/wodtimer/internal/session"
	"github.com/gofiber/fiber/v2"
)

// Session endpoints mirror the form: add a round, remove the last one, edit
// everything, calculate.

func registerSessions(app *fiber.App, a *api) {
	g := app.Group("/sessions")

	g.Post("/", func(c *fiber.Ctx) error {
		s := a.sessions.Create()
		a.log.Info("session created", "id", s.ID)
		return c.Status(http.StatusCreated).JSON(s)
	})

	g.Get("/:id", func(c *fiber.Ctx) error {
		s, err := a.sessions.Get(c.Params("id"))
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(s)
	})

	g.Put("/:id", func(c *fiber.Ctx) error {
		p, err := plan.ParseJSON(c.Body())
		if err != nil {
			return fail(c, err)
		}
		if err := p.CheckLimit(a.maxRounds); err != nil {
			return fail(c, err)
		}
		s, err := a.sessions.Update(c.Params("id"), func(s *session.Session) error {
			s.Apply(p)
			return nil
		})
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(s)
	})

	g.Delete("/:id", func(c *fiber.Ctx) error {
		if err := a.sessions.Delete(c.Params("id")); err != nil {
			return fail(c, err)
		}
		return c.SendStatus(http.StatusNoContent)
	})

	g.Post("/:id/rounds", func(c *fiber.Ctx) error {
		s, err := a.sessions.Update(c.Params("id"), func(s *session.Session) error {
			if a.maxRounds > 0 && len(s.Rounds) >= a.maxRounds {
				return fmt.Errorf("%w: limit is %d", plan.ErrTooManyRounds, a.maxRounds)
			}
			s.AddRound()
			return nil
		})
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(s)
	})

	g.Delete("/:id/rounds/last", func(c *fiber.Ctx) error {
		s, err := a.sessions.Update(c.Params("id"), func(s *session.Session) error {
			s.RemoveLastRound()
			return nil
		})
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(s)
	})

	g.Post("/:id/calculate", func(c *fiber.Ctx) error {
		format, err := report.ParseFormat(c.Query("format"))
		if err != nil {
			return fail(c, err)
		}
		s, err := a.sessions.Get(c.Params("id"))
		if err != nil {
			return fail(c, err)
		}
		return a.respond(c, format, s.Plan())
	})
}
