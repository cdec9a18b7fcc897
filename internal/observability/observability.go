// Package observability builds the logger, tracer and metrics shared by the
// application modules.
package observability

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Config is the subset of application configuration observability needs.
type Config struct {
	ServiceName string
	Environment string
	LogLevel    string
}

// Observability groups the instrumentation handed to every module.
type Observability struct {
	Logger   *slog.Logger
	Tracer   trace.Tracer
	Registry *prometheus.Registry

	TriviaMetrics TriviaMetrics
	ScoreMetrics  ScoreMetrics
	GuildMetrics  GuildMetrics
}

// New wires a production Observability: slog to stdout, the global otel tracer
// and a fresh prometheus registry with process and Go collectors.
func New(cfg Config) *Observability {
	logger := NewLogger(os.Stdout, cfg)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	name := cfg.ServiceName
	if name == "" {
		name = "trivia-bot"
	}

	return &Observability{
		Logger:        logger,
		Tracer:        otel.Tracer(name),
		Registry:      registry,
		TriviaMetrics: NewTriviaMetrics(registry),
		ScoreMetrics:  NewScoreMetrics(registry),
		GuildMetrics:  NewGuildMetrics(registry),
	}
}

// NewNoOp returns an Observability that discards everything. Used by tests
// and the offline CLI commands.
func NewNoOp() *Observability {
	return &Observability{
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		Tracer:        noop.NewTracerProvider().Tracer("noop"),
		Registry:      prometheus.NewRegistry(),
		TriviaMetrics: &NoOpTriviaMetrics{},
		ScoreMetrics:  &NoOpScoreMetrics{},
		GuildMetrics:  &NoOpGuildMetrics{},
	}
}

// NewLogger returns a JSON logger in production and a text logger elsewhere.
func NewLogger(w io.Writer, cfg Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}

	var handler slog.Handler
	if strings.EqualFold(cfg.Environment, "production") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	if cfg.ServiceName != "" {
		logger = logger.With(slog.String("service", cfg.ServiceName))
	}
	return logger
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
