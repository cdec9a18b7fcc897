package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Black-And-White-Club/trivia-bot/app/httpapi"
	"golang.org/x/sync/errgroup"
)

// Run starts the router, the HTTP API and the module goroutines, and blocks
// until ctx is canceled or one of them fails.
func (a *App) Run(ctx context.Context) error {
	logger := a.Observability.Logger
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := a.Router.Run(ctx); err != nil {
			return fmt.Errorf("watermill router: %w", err)
		}
		return nil
	})

	if a.HTTPServer != nil {
		g.Go(func() error { return httpapi.Serve(ctx, a.HTTPServer, logger) })
	}

	if a.MetricsServer != nil {
		g.Go(func() error { return httpapi.Serve(ctx, a.MetricsServer, logger) })
	}

	var wg sync.WaitGroup
	wg.Add(3)
	go a.GuildModule.Run(ctx, &wg)
	go a.ScoreModule.Run(ctx, &wg)
	go a.TriviaModule.Run(ctx, &wg)

	select {
	case <-a.Router.Running():
		logger.InfoContext(ctx, "Trivia backend running",
			slog.Int("recipes", a.CatalogModule.Catalog.RecipeCount()),
		)
	case <-ctx.Done():
	}

	err := g.Wait()
	wg.Wait()
	return err
}
