package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/gnomegl/gitfill/internal/art"
	appcli "github.com/gnomegl/gitfill/internal/cli"
	"github.com/gnomegl/gitfill/internal/config"
	"github.com/gnomegl/gitfill/internal/service"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func newLogger(verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	logger.SetLevel(logrus.WarnLevel)
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

func runApp(c *cli.Context) error {
	cfg, err := config.ParseConfig(c)
	if err != nil {
		return err
	}
	logger := newLogger(cfg.Verbose)

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps := service.Deps{Log: logger}
	if cfg.Push {
		publisher, err := service.Authenticate(ctx, cfg, logger)
		if err != nil {
			return err
		}
		deps.Publisher = publisher
	}

	if _, err := service.NewOrchestrator(cfg, deps).Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			color.Yellow("\n[!] Interrupted; commits created so far were kept")
		}
		return err
	}
	return nil
}

func main() {
	log.SetFlags(0)

	// .env is optional; its values feed the GITFILL_* flag variables.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning: could not load .env: %v", err)
	}

	app := appcli.NewApp(runApp)
	app.Before = func(c *cli.Context) error {
		if !c.Bool("help") && !c.Bool("version") {
			art.PrintLogo(os.Stderr)
		}
		return nil
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(color.RedString("[x] %v", err))
	}
}
