package observability

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
)

// TriviaMetrics records game session and round activity.
type TriviaMetrics interface {
	OperationMetrics
	RecordSessionStarted(ctx context.Context)
	RecordSessionFinished(ctx context.Context, outcome string)
	RecordRoundFinished(ctx context.Context, outcome string)
	RecordGuess(ctx context.Context, matched bool)
	RecordEventFault(ctx context.Context)
}

type triviaMetrics struct {
	*operationMetrics
	sessionsStarted  prometheus.Counter
	sessionsFinished *prometheus.CounterVec
	roundsFinished   *prometheus.CounterVec
	guesses          *prometheus.CounterVec
	eventFaults      prometheus.Counter
}

// NewTriviaMetrics registers the trivia collectors on reg.
func NewTriviaMetrics(reg prometheus.Registerer) TriviaMetrics {
	m := &triviaMetrics{
		operationMetrics: newOperationMetrics(reg, "trivia"),
		sessionsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "trivia",
			Name:      "sessions_started_total",
			Help:      "Game sessions that opened signups.",
		}),
		sessionsFinished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "trivia",
			Name:      "sessions_finished_total",
			Help:      "Game sessions that reached the finished phase, by outcome.",
		}, []string{"outcome"}),
		roundsFinished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "trivia",
			Name:      "rounds_finished_total",
			Help:      "Rounds finished, by outcome (completed, timeout, skipped).",
		}, []string{"outcome"}),
		guesses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "trivia",
			Name:      "guesses_total",
			Help:      "Participant answers processed by round engines.",
		}, []string{"matched"}),
		eventFaults: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "trivia",
			Name:      "event_faults_total",
			Help:      "Inbound events skipped because processing them failed.",
		}),
	}
	reg.MustRegister(m.sessionsStarted, m.sessionsFinished, m.roundsFinished, m.guesses, m.eventFaults)
	return m
}

func (m *triviaMetrics) RecordSessionStarted(context.Context) { m.sessionsStarted.Inc() }

func (m *triviaMetrics) RecordSessionFinished(_ context.Context, outcome string) {
	m.sessionsFinished.WithLabelValues(outcome).Inc()
}

func (m *triviaMetrics) RecordRoundFinished(_ context.Context, outcome string) {
	m.roundsFinished.WithLabelValues(outcome).Inc()
}

func (m *triviaMetrics) RecordGuess(_ context.Context, matched bool) {
	label := "false"
	if matched {
		label = "true"
	}
	m.guesses.WithLabelValues(label).Inc()
}

func (m *triviaMetrics) RecordEventFault(context.Context) { m.eventFaults.Inc() }

// NoOpTriviaMetrics discards all trivia measurements.
type NoOpTriviaMetrics struct{ noOpOperationMetrics }

func (*NoOpTriviaMetrics) RecordSessionStarted(context.Context)          {}
func (*NoOpTriviaMetrics) RecordSessionFinished(context.Context, string) {}
func (*NoOpTriviaMetrics) RecordRoundFinished(context.Context, string)   {}
func (*NoOpTriviaMetrics) RecordGuess(context.Context, bool)             {}
func (*NoOpTriviaMetrics) RecordEventFault(context.Context)              {}
