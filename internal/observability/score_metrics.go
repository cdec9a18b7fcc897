package observability

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
)

// ScoreMetrics records score ledger activity.
type ScoreMetrics interface {
	OperationMetrics
	RecordPlayersFinalized(ctx context.Context, count int)
}

type scoreMetrics struct {
	*operationMetrics
	playersFinalized prometheus.Counter
}

// NewScoreMetrics registers the score ledger collectors on reg.
func NewScoreMetrics(reg prometheus.Registerer) ScoreMetrics {
	m := &scoreMetrics{
		operationMetrics: newOperationMetrics(reg, "score"),
		playersFinalized: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "score",
			Name:      "players_finalized_total",
			Help:      "Player stat rows written by session finalization.",
		}),
	}
	reg.MustRegister(m.playersFinalized)
	return m
}

func (m *scoreMetrics) RecordPlayersFinalized(_ context.Context, count int) {
	m.playersFinalized.Add(float64(count))
}

// NoOpScoreMetrics discards all score measurements.
type NoOpScoreMetrics struct{ noOpOperationMetrics }

func (*NoOpScoreMetrics) RecordPlayersFinalized(context.Context, int) {}

// GuildMetrics records guild configuration activity.
type GuildMetrics interface {
	OperationMetrics
}

// NewGuildMetrics registers the guild collectors on reg.
func NewGuildMetrics(reg prometheus.Registerer) GuildMetrics {
	return newOperationMetrics(reg, "guild")
}

// NoOpGuildMetrics discards all guild measurements.
type NoOpGuildMetrics struct{ noOpOperationMetrics }
