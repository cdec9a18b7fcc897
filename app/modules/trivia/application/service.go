package triviaservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Black-And-White-Club/trivia-bot/internal/observability"
	"github.com/Black-And-White-Club/trivia-bot/internal/results"
	"github.com/Black-And-White-Club/trivia-bot/internal/sharedtypes"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Options tune a TriviaService.
type Options struct {
	// CloseGuessHints reacts to answers that were almost right.
	CloseGuessHints bool
	// NewSessionID defaults to random UUIDs.
	NewSessionID func() sharedtypes.SessionID
}

// TriviaService is the session registry: it owns every non-finished session,
// keyed by channel.
type TriviaService struct {
	settings  SettingsProvider
	ledger    Ledger
	presenter Presenter
	decks     DeckFactory
	logger    *slog.Logger
	metrics   observability.TriviaMetrics
	tracer    trace.Tracer
	opts      Options

	// lifetime bounds every session; request contexts end with the request.
	lifetime context.Context
	stop     context.CancelFunc
	wg       sync.WaitGroup

	mu       sync.Mutex
	sessions map[sharedtypes.ChannelID]*Session
}

// NewTriviaService creates a new TriviaService.
func NewTriviaService(
	settings SettingsProvider,
	ledger Ledger,
	presenter Presenter,
	decks DeckFactory,
	logger *slog.Logger,
	metrics observability.TriviaMetrics,
	tracer trace.Tracer,
	opts Options,
) *TriviaService {
	if opts.NewSessionID == nil {
		opts.NewSessionID = func() sharedtypes.SessionID { return sharedtypes.SessionID(uuid.NewString()) }
	}
	lifetime, stop := context.WithCancel(context.Background())
	return &TriviaService{
		settings:  settings,
		ledger:    ledger,
		presenter: presenter,
		decks:     decks,
		logger:    logger,
		metrics:   metrics,
		tracer:    tracer,
		opts:      opts,
		lifetime:  lifetime,
		stop:      stop,
		sessions:  make(map[sharedtypes.ChannelID]*Session),
	}
}

type operationFunc func(ctx context.Context) (results.OperationResult[SessionInfo, RequestFailure], error)

// withTelemetry wraps a service operation with tracing, metrics, and panic recovery.
func (s *TriviaService) withTelemetry(
	ctx context.Context,
	operationName string,
	channelID sharedtypes.ChannelID,
	op operationFunc,
) (result results.OperationResult[SessionInfo, RequestFailure], err error) {
	ctx, span := s.tracer.Start(ctx, operationName, trace.WithAttributes(
		attribute.String("operation", operationName),
		attribute.String("channel_id", channelID.String()),
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
				slog.String("operation", operationName),
				slog.String("channel_id", channelID.String()),
				slog.Any("error", err),
			)
			s.metrics.RecordOperationFailure(ctx, operationName)
			span.RecordError(err)
			result = results.OperationResult[SessionInfo, RequestFailure]{}
		}
	}()

	result, err = op(ctx)
	if err != nil {
		wrappedErr := fmt.Errorf("%s: %w", operationName, err)
		s.logger.ErrorContext(ctx, "Operation failed with error",
			slog.String("operation", operationName),
			slog.String("channel_id", channelID.String()),
			slog.Any("error", wrappedErr),
		)
		s.metrics.RecordOperationFailure(ctx, operationName)
		span.RecordError(wrappedErr)
		return result, wrappedErr
	}

	if result.IsFailure() {
		s.logger.WarnContext(ctx, "Operation returned failure result",
			slog.String("operation", operationName),
			slog.String("channel_id", channelID.String()),
			slog.Any("reason", result.Failure.Err),
		)
	}

	s.metrics.RecordOperationSuccess(ctx, operationName)
	return result, nil
}

func failure(guildID sharedtypes.GuildID, channelID sharedtypes.ChannelID, err error) results.OperationResult[SessionInfo, RequestFailure] {
	return results.FailureResult[SessionInfo](RequestFailure{GuildID: guildID, ChannelID: channelID, Err: err})
}

// StartSession opens signup in channelID using the guild's current settings.
// A channel with a session in signup or running rejects the request. A
// finished session that has not been removed yet is replaced.
func (s *TriviaService) StartSession(
	ctx context.Context,
	guildID sharedtypes.GuildID,
	channelID sharedtypes.ChannelID,
	requestedBy sharedtypes.PlayerID,
) (StartSessionResult, error) {
	return s.withTelemetry(ctx, "StartSession", channelID, func(ctx context.Context) (StartSessionResult, error) {
		if guildID == "" || channelID == "" {
			return failure(guildID, channelID, ErrInvalidChannel), nil
		}
		if busy(s.ActivePhase(channelID)) {
			return failure(guildID, channelID, ErrSessionConflict), nil
		}

		settings, err := s.settings.Settings(ctx, guildID)
		if err != nil {
			return StartSessionResult{}, fmt.Errorf("load guild settings: %w", err)
		}

		session := NewSession(SessionConfig{
			ID:              s.opts.NewSessionID(),
			GuildID:         guildID,
			ChannelID:       channelID,
			Settings:        settings,
			Deck:            s.decks(),
			Presenter:       s.presenter,
			Ledger:          s.ledger,
			Logger:          s.logger,
			Metrics:         s.metrics,
			CloseGuessHints: s.opts.CloseGuessHints,
		})
		session.setPhase(PhaseSignup)

		s.mu.Lock()
		if current, ok := s.sessions[channelID]; ok && busy(current.Phase()) {
			s.mu.Unlock()
			return failure(guildID, channelID, ErrSessionConflict), nil
		}
		s.sessions[channelID] = session
		s.wg.Add(1)
		s.mu.Unlock()

		s.metrics.RecordSessionStarted(ctx)
		s.logger.InfoContext(ctx, "Session started",
			slog.String("session_id", string(session.ID())),
			slog.String("guild_id", string(guildID)),
			slog.String("channel_id", string(channelID)),
			slog.String("requested_by", string(requestedBy)),
		)
		go s.run(session)

		return results.SuccessResult[SessionInfo, RequestFailure](SessionInfo{
			SessionID: session.ID(),
			GuildID:   guildID,
			ChannelID: channelID,
		}), nil
	})
}

func busy(p Phase) bool {
	return p == PhaseSignup || p == PhaseRunning
}

// ForceStartNow closes signup in channelID immediately, or skips the round in
// progress when the session is already running.
func (s *TriviaService) ForceStartNow(
	ctx context.Context,
	guildID sharedtypes.GuildID,
	channelID sharedtypes.ChannelID,
) (ForceStartResult, error) {
	return s.withTelemetry(ctx, "ForceStartNow", channelID, func(ctx context.Context) (ForceStartResult, error) {
		session, ok := s.Session(channelID)
		if !ok || !session.ForceStart() {
			return failure(guildID, channelID, ErrNoActiveSession), nil
		}
		return results.SuccessResult[SessionInfo, RequestFailure](SessionInfo{
			SessionID: session.ID(),
			GuildID:   session.cfg.GuildID,
			ChannelID: channelID,
		}), nil
	})
}

// Deliver routes ev to the running session of channelID.
func (s *TriviaService) Deliver(ctx context.Context, channelID sharedtypes.ChannelID, ev Event) bool {
	session, ok := s.Session(channelID)
	if !ok {
		return false
	}
	return session.Deliver(ctx, ev)
}

// ActivePhase reports the phase of the channel's session.
func (s *TriviaService) ActivePhase(channelID sharedtypes.ChannelID) Phase {
	session, ok := s.Session(channelID)
	if !ok {
		return PhaseInactive
	}
	return session.Phase()
}

// Session returns the session registered for channelID. A finished session
// stays registered until its goroutine removes it.
func (s *TriviaService) Session(channelID sharedtypes.ChannelID) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[channelID]
	return session, ok
}

func (s *TriviaService) run(session *Session) {
	defer s.wg.Done()
	defer s.remove(session)

	ctx := s.lifetime
	outcome := OutcomeCompleted
	defer func() {
		if r := recover(); r != nil {
			outcome = OutcomeFailed
			s.logger.ErrorContext(ctx, "Critical panic recovered in session",
				slog.String("session_id", string(session.ID())),
				slog.Any("error", r),
			)
		}
		s.metrics.RecordSessionFinished(ctx, outcome)
	}()

	err := session.Run(ctx)
	switch {
	case err == nil:
	case errors.Is(err, ErrInsufficientPlayers):
		outcome = OutcomeInsufficientPlayers
	case errors.Is(err, context.Canceled):
		outcome = OutcomeCanceled
	default:
		outcome = OutcomeFailed
		s.logger.ErrorContext(ctx, "Session ended with error",
			slog.String("session_id", string(session.ID())),
			slog.Any("error", err),
		)
	}
}

func (s *TriviaService) remove(session *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sessions[session.cfg.ChannelID] == session {
		delete(s.sessions, session.cfg.ChannelID)
	}
}

// Close cancels all sessions and waits for them to stop.
func (s *TriviaService) Close() {
	s.stop()
	s.wg.Wait()
}
