package httpapi

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/aaronromeo/wodtimer/internal/plan"
	"github.com/aaronromeo/wodtimer/internal/report"
	"github.com/gofiber/fiber/v2"
)

func registerCalculate(app *fiber.App, a *api) {
	app.Post("/calculate", func(c *fiber.Ctx) error {
		format, err := report.ParseFormat(c.Query("format"))
		if err != nil {
			return fail(c, err)
		}
		p, err := plan.ParseJSON(c.Body())
		if err != nil {
			return fail(c, err)
		}
		return a.respond(c, format, p)
	})
}

// respond computes p and writes it in the requested format.
func (a *api) respond(c *fiber.Ctx, format report.Format, p *plan.Plan) error {
	if err := p.CheckLimit(a.maxRounds); err != nil {
		return fail(c, err)
	}
	results, err := p.Compute()
	if err != nil {
		return fail(c, err)
	}
	a.log.Debug("calculated rounds", "mode", p.Mode, "rounds", len(results), "format", string(format))

	var buf bytes.Buffer
	if err := report.Render(&buf, format, report.New(results)); err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	c.Set(fiber.HeaderContentType, format.ContentType())
	if format == report.FormatXLSX || format == report.FormatPNG {
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="rounds.%s"`, format))
	}
	return c.Send(buf.Bytes())
}
