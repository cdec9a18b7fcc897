package scoreservice

import (
	"io"
	"log/slog"

	scoredb "github.com/Black-And-White-Club/trivia-bot/app/modules/score/infrastructure/repositories"
	"github.com/Black-And-White-Club/trivia-bot/internal/observability"
	"go.opentelemetry.io/otel/trace/noop"
)

func newTestService(repo scoredb.Repository) *ScoreService {
	return NewScoreService(
		repo,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		&observability.NoOpScoreMetrics{},
		noop.NewTracerProvider().Tracer("test"),
		nil,
	)
}
