package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aaronromeo/wodtimer/internal/config"
	"github.com/aaronromeo/wodtimer/internal/plan"
	"github.com/aaronromeo/wodtimer/internal/report"
	"github.com/urfave/cli/v2"
)

func newCalcCommand(cfg *config.Config, logger *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "calc",
		Usage: "calculate a plan file (YAML or JSON, path or URL)",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "plan", Aliases: []string{"p"}, Usage: "plan path or http(s) URL", Required: true},
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: string(report.FormatText), Usage: "text, json, yaml, xlsx or png"},
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "write to this file instead of stdout"},
		},
		Action: func(c *cli.Context) error {
			format, err := report.ParseFormat(c.String("format"))
			if err != nil {
				return err
			}
			if (format == report.FormatXLSX || format == report.FormatPNG) && c.String("out") == "" {
				return fmt.Errorf("--out is required for %s output", format)
			}

			f := plan.NewFetcher(
				plan.WithRetries(cfg.FetchRetries),
				plan.WithMaxBytes(cfg.MaxFetchBytes),
				plan.WithLogger(logger),
			)
			p, err := f.Load(c.Context, c.String("plan"))
			if err != nil {
				return err
			}
			if err := p.CheckLimit(cfg.MaxRounds); err != nil {
				return err
			}
			results, err := p.Compute()
			if err != nil {
				return err
			}
			logger.Debug("calculated rounds", "plan", c.String("plan"), "rounds", len(results))

			return writeOut(c.App.Writer, c.String("out"), func(w io.Writer) error {
				return report.Render(w, format, report.New(results))
			})
		},
	}
}

func newSchemaCommand() *cli.Command {
	return &cli.Command{
		Name:  "schema",
		Usage: "print the plan JSON Schema",
		Action: func(c *cli.Context) error {
			_, err := io.WriteString(c.App.Writer, plan.Schema)
			return err
		},
	}
}

func writeOut(stdout io.Writer, path string, fn func(io.Writer) error) error {
	if path == "" {
		return fn(stdout)
	}
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(fh); err != nil {
		fh.Close() //nolint:errcheck
		return err
	}
	return fh.Close()
}
