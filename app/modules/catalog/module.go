package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	catalogservice "github.com/Black-And-White-Club/trivia-bot/app/modules/catalog/application"
	"github.com/Black-And-White-Club/trivia-bot/config"
	"github.com/Black-And-White-Club/trivia-bot/internal/observability"
)

// Module owns the process-wide recipe catalog.
type Module struct {
	Catalog *catalogservice.Catalog
}

// NewCatalogModule loads the dataset configured under dataset.root. A load
// failure is fatal: the service never runs with a partial catalog.
func NewCatalogModule(ctx context.Context, cfg *config.Config, obs *observability.Observability) (*Module, error) {
	logger := obs.Logger
	logger.InfoContext(ctx, "catalog.NewCatalogModule called", slog.String("root", cfg.Dataset.Root))

	start := time.Now()
	cat, err := catalogservice.LoadDir(cfg.Dataset.Root, catalogservice.Options{
		Namespace: cfg.Dataset.Namespace,
		Logger:    logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load recipe catalog: %w", err)
	}

	logger.InfoContext(ctx, "Recipe catalog ready",
		slog.Int("recipes", cat.RecipeCount()),
		slog.Int("tags", len(cat.TagNames())),
		slog.Duration("took", time.Since(start)),
	)
	return &Module{Catalog: cat}, nil
}
