package score

import (
	"context"
	"sync"

	scoreservice "github.com/Black-And-White-Club/trivia-bot/app/modules/score/application"
	scoredb "github.com/Black-And-White-Club/trivia-bot/app/modules/score/infrastructure/repositories"
	"github.com/Black-And-White-Club/trivia-bot/internal/observability"
	"github.com/uptrace/bun"
)

// Module represents the score module.
type Module struct {
	ScoreService  scoreservice.Service
	cancelFunc    context.CancelFunc
	observability *observability.Observability
}

// NewScoreModule creates a new instance of the Score module. The score ledger
// has no inbound topics of its own: the trivia module drives it directly and
// the leaderboard module reads from it.
func NewScoreModule(ctx context.Context, obs *observability.Observability, db *bun.DB) (*Module, error) {
	obs.Logger.InfoContext(ctx, "score.NewScoreModule called")

	scoreService := scoreservice.NewScoreService(
		scoredb.NewRepository(db),
		obs.Logger,
		obs.ScoreMetrics,
		obs.Tracer,
		db,
	)

	return &Module{
		ScoreService:  scoreService,
		observability: obs,
	}, nil
}

func (m *Module) Run(ctx context.Context, wg *sync.WaitGroup) {
	logger := m.observability.Logger
	logger.InfoContext(ctx, "Starting score module")

	ctx, cancel := context.WithCancel(ctx)
	m.cancelFunc = cancel
	defer cancel()

	if wg != nil {
		defer wg.Done()
	}

	<-ctx.Done()
	logger.InfoContext(ctx, "Score module goroutine stopped")
}

func (m *Module) Close() error {
	if m.cancelFunc != nil {
		m.cancelFunc()
	}
	m.observability.Logger.Info("Score module stopped")
	return nil
}
