package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/aaronromeo/wodtimer/internal/config"
	"github.com/urfave/cli/v2"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	programLevel := slog.LevelWarn
	if cfg.Debug {
		programLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: programLevel}))
	slog.SetDefault(logger)

	app := &cli.App{
		Name:  "wodtimer",
		Usage: "turn workout round boundaries into a start/end/duration table",
		Commands: []*cli.Command{
			newCalcCommand(cfg, logger),
			newSchemaCommand(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
