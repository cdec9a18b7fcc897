package guildservice

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	guilddb "github.com/Black-And-White-Club/trivia-bot/app/modules/guild/infrastructure/repositories"
	"github.com/Black-And-White-Club/trivia-bot/internal/observability"
	"github.com/Black-And-White-Club/trivia-bot/internal/sharedtypes"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// GuildService implements the Service interface.
type GuildService struct {
	repo     guilddb.Repository
	logger   *slog.Logger
	metrics  observability.GuildMetrics
	tracer   trace.Tracer
	defaults GameSettings
}

// NewGuildService creates a new GuildService.
func NewGuildService(
	repo guilddb.Repository,
	logger *slog.Logger,
	metrics observability.GuildMetrics,
	tracer trace.Tracer,
	defaults GameSettings,
) *GuildService {
	defaults.Default = true
	return &GuildService{
		repo:     repo,
		logger:   logger,
		metrics:  metrics,
		tracer:   tracer,
		defaults: defaults,
	}
}

// operationFunc is the signature for service operation functions.
type operationFunc func(ctx context.Context) (GuildConfigResult, error)

// withTelemetry wraps a service operation with tracing, metrics, and panic recovery.
func (s *GuildService) withTelemetry(
	ctx context.Context,
	operationName string,
	guildID sharedtypes.GuildID,
	op operationFunc,
) (result GuildConfigResult, err error) {
	ctx, span := s.tracer.Start(ctx, operationName, trace.WithAttributes(
		attribute.String("operation", operationName),
		attribute.String("guild_id", string(guildID)),
	))
	defer span.End()

	s.metrics.RecordOperationAttempt(ctx, operationName)

	startTime := time.Now()
	defer func() {
		s.metrics.RecordOperationDuration(ctx, operationName, time.Since(startTime))
	}()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v", operationName, r)
			s.logger.ErrorContext(ctx, "Critical panic recovered",
				slog.String("guild_id", string(guildID)),
				slog.Any("error", err),
			)
			s.metrics.RecordOperationFailure(ctx, operationName)
			span.RecordError(err)
			result = GuildConfigResult{}
		}
	}()

	result, err = op(ctx)
	if err != nil {
		wrappedErr := fmt.Errorf("%s: %w", operationName, err)
		s.logger.ErrorContext(ctx, "Operation failed with error",
			slog.String("operation", operationName),
			slog.String("guild_id", string(guildID)),
			slog.Any("error", wrappedErr),
		)
		s.metrics.RecordOperationFailure(ctx, operationName)
		span.RecordError(wrappedErr)
		return result, wrappedErr
	}

	// Business failures are not operation failures in metrics.
	if result.Failure != nil {
		s.logger.WarnContext(ctx, "Operation returned failure result",
			slog.String("operation", operationName),
			slog.String("guild_id", string(guildID)),
			slog.Any("failure_payload", *result.Failure),
		)
	}

	if result.Success != nil {
		s.logger.InfoContext(ctx, "Operation completed successfully",
			slog.String("operation", operationName),
			slog.String("guild_id", string(guildID)),
		)
	}

	s.metrics.RecordOperationSuccess(ctx, operationName)
	return result, nil
}
