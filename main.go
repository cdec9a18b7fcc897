package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Black-And-White-Club/trivia-bot/app"
	"github.com/Black-And-White-Club/trivia-bot/app/database"
	catalogservice "github.com/Black-And-White-Club/trivia-bot/app/modules/catalog/application"
	catalogdomain "github.com/Black-And-White-Club/trivia-bot/app/modules/catalog/domain"
	"github.com/Black-And-White-Club/trivia-bot/config"
	"github.com/Black-And-White-Club/trivia-bot/internal/observability"
	"github.com/urfave/cli/v2"
)

func main() {
	cliApp := &cli.App{
		Name:  "trivia-bot",
		Usage: "crafting recipe trivia backend",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Value:   "config.yaml",
				Usage:   "path to the configuration file",
				EnvVars: []string{"CONFIG_PATH"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the backend",
				Action: serve,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "migrate",
						Value: true,
						Usage: "apply pending migrations before starting",
					},
				},
			},
			{
				Name:   "check-dataset",
				Usage:  "load a dataset and report what it contains",
				Action: checkDataset,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "root", Usage: "dataset root; defaults to dataset.root from the config"},
					&cli.StringFlag{Name: "namespace", Usage: "item namespace; defaults to dataset.namespace from the config"},
				},
			},
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func serve(c *cli.Context) error {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	obs := observability.New(observability.Config{
		ServiceName: cfg.Observability.ServiceName,
		Environment: cfg.Observability.Environment,
		LogLevel:    cfg.Observability.LogLevel,
	})
	logger := obs.Logger

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, cfg, obs)
	if err != nil {
		return fmt.Errorf("failed to initialize app: %w", err)
	}

	if c.Bool("migrate") {
		if err := database.MigrateAll(ctx, application.DB, logger); err != nil {
			_ = application.Close()
			return err
		}
	}

	runErr := application.Run(ctx)
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		logger.Error("Application stopped with error", slog.Any("error", runErr))
	}
	closeErr := application.Close()
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}
	return closeErr
}

func checkDataset(c *cli.Context) error {
	root, namespace := c.String("root"), c.String("namespace")
	if root == "" || namespace == "" {
		cfg, err := config.LoadConfig(c.String("config"))
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if root == "" {
			root = cfg.Dataset.Root
		}
		if namespace == "" {
			namespace = cfg.Dataset.Namespace
		}
	}

	logger := observability.NewLogger(os.Stderr, observability.Config{LogLevel: "warn"})
	cat, err := catalogservice.LoadDir(root, catalogservice.Options{Namespace: namespace, Logger: logger})
	if err != nil {
		var cycle *catalogdomain.TagCycleError
		var dataset *catalogdomain.DatasetError
		switch {
		case errors.As(err, &cycle):
			return cli.Exit(fmt.Sprintf("tag cycle: %v", cycle), 2)
		case errors.As(err, &dataset):
			return cli.Exit(fmt.Sprintf("invalid dataset: %v", dataset), 2)
		}
		return err
	}

	fmt.Fprintf(c.App.Writer, "recipes: %d\ntags: %d\n", cat.RecipeCount(), len(cat.TagNames()))
	return nil
}
