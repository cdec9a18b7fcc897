package trivia

import (
	"context"
	"fmt"
	"sync"

	catalogservice "github.com/Black-And-White-Club/trivia-bot/app/modules/catalog/application"
	triviaservice "github.com/Black-And-White-Club/trivia-bot/app/modules/trivia/application"
	triviapresenter "github.com/Black-And-White-Club/trivia-bot/app/modules/trivia/infrastructure/presenter"
	triviarouter "github.com/Black-And-White-Club/trivia-bot/app/modules/trivia/infrastructure/router"
	"github.com/Black-And-White-Club/trivia-bot/config"
	"github.com/Black-And-White-Club/trivia-bot/internal/observability"
	"github.com/ThreeDotsLabs/watermill/message"
)

// Module represents the trivia module.
type Module struct {
	TriviaService *triviaservice.TriviaService
	Presenter     *triviapresenter.Presenter
	TriviaRouter  *triviarouter.TriviaRouter
	cancelFunc    context.CancelFunc
	observability *observability.Observability
}

// NewTriviaModule creates the session registry and registers its handlers.
func NewTriviaModule(
	ctx context.Context,
	cfg *config.Config,
	obs *observability.Observability,
	catalog *catalogservice.Catalog,
	settings triviaservice.SettingsProvider,
	ledger triviaservice.Ledger,
	router *message.Router,
	subscriber message.Subscriber,
	publisher message.Publisher,
) (*Module, error) {
	logger := obs.Logger
	logger.InfoContext(ctx, "trivia.NewTriviaModule called")

	presenter := triviapresenter.NewPresenter(publisher, logger, cfg.Trivia.EditRatePerSecond)
	service := triviaservice.NewTriviaService(
		settings,
		ledger,
		presenter,
		triviaservice.IngredientDecks(catalog),
		logger,
		obs.TriviaMetrics,
		obs.Tracer,
		triviaservice.Options{CloseGuessHints: cfg.Trivia.CloseGuessHints},
	)

	triviaRouter := triviarouter.NewTriviaRouter(logger, router, subscriber, publisher, obs.Tracer)
	if err := triviaRouter.Configure(ctx, service, presenter); err != nil {
		return nil, fmt.Errorf("failed to configure trivia router: %w", err)
	}

	return &Module{
		TriviaService: service,
		Presenter:     presenter,
		TriviaRouter:  triviaRouter,
		observability: obs,
	}, nil
}

// Run blocks until ctx is canceled.
func (m *Module) Run(ctx context.Context, wg *sync.WaitGroup) {
	logger := m.observability.Logger
	logger.InfoContext(ctx, "Starting trivia module")

	ctx, cancel := context.WithCancel(ctx)
	m.cancelFunc = cancel
	defer cancel()

	if wg != nil {
		defer wg.Done()
	}

	<-ctx.Done()
	logger.InfoContext(ctx, "Trivia module goroutine stopped")
}

// Close cancels running sessions and waits for them to stop.
func (m *Module) Close() error {
	if m.cancelFunc != nil {
		m.cancelFunc()
	}
	m.TriviaService.Close()
	m.observability.Logger.Info("Trivia module stopped")
	return nil
}
