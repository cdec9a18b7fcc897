package leaderboardhandlers

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

// LeaderboardHandlers implements the Handlers interface.
type LeaderboardHandlers struct {
	boards Boards
	logger *slog.Logger
	tracer trace.Tracer
}

// NewLeaderboardHandlers creates a new LeaderboardHandlers instance.
func NewLeaderboardHandlers(boards Boards, logger *slog.Logger, tracer trace.Tracer) *LeaderboardHandlers {
	return &LeaderboardHandlers{
		boards: boards,
		logger: logger,
		tracer: tracer,
	}
}
