package triviaservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	catalogdomain "github.com/Black-And-White-Club/trivia-bot/app/modules/catalog/domain"
	guildservice "github.com/Black-And-White-Club/trivia-bot/app/modules/guild/application"
	"github.com/Black-And-White-Club/trivia-bot/internal/observability"
	"github.com/Black-And-White-Club/trivia-bot/internal/sharedtypes"
)

const eventBuffer = 64

// SessionConfig holds everything a session needs. Settings are read once at
// start; later guild config changes do not affect a running session.
type SessionConfig struct {
	ID        sharedtypes.SessionID
	GuildID   sharedtypes.GuildID
	ChannelID sharedtypes.ChannelID
	Settings  guildservice.GameSettings
	Deck      Deck

	Presenter Presenter
	Ledger    Ledger
	Logger    *slog.Logger
	Metrics   observability.TriviaMetrics

	CloseGuessHints bool
}

// Session is one game in one channel, from signup to finish. It is driven by
// Run; the other methods are safe to call from any goroutine.
type Session struct {
	cfg    SessionConfig
	logger *slog.Logger

	mu      sync.Mutex
	phase   Phase
	roster  []sharedtypes.Participant
	reports []RoundReport

	events  chan Event
	control chan struct{}
	done    chan struct{}
}

// NewSession creates an inactive session.
func NewSession(cfg SessionConfig) *Session {
	return &Session{
		cfg: cfg,
		logger: cfg.Logger.With(
			slog.String("session_id", string(cfg.ID)),
			slog.String("guild_id", string(cfg.GuildID)),
			slog.String("channel_id", string(cfg.ChannelID)),
		),
		events:  make(chan Event, eventBuffer),
		control: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
}

func (s *Session) ID() sharedtypes.SessionID { return s.cfg.ID }

func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Roster returns the frozen roster, empty before signup closes.
func (s *Session) Roster() []sharedtypes.Participant {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]sharedtypes.Participant, len(s.roster))
	copy(out, s.roster)
	return out
}

// Rounds returns the reports of the rounds played so far.
func (s *Session) Rounds() []RoundReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]RoundReport, len(s.reports))
	copy(out, s.reports)
	return out
}

// Done is closed when Run returns.
func (s *Session) Done() <-chan struct{} { return s.done }

// ForceStart closes signup now, or skips the current round when running.
// It reports false when the session is not in either phase. A skip that
// arrives between rounds, while the previous summary is still being posted,
// is dropped and does not carry over to the next round.
func (s *Session) ForceStart() bool {
	switch s.Phase() {
	case PhaseSignup, PhaseRunning:
	default:
		return false
	}
	select {
	case s.control <- struct{}{}:
	default:
	}
	return true
}

// Deliver queues a participant message for the running round. Messages are
// consumed in the order Deliver is called. It reports false when the session
// is not running.
func (s *Session) Deliver(ctx context.Context, ev Event) bool {
	if s.Phase() != PhaseRunning {
		return false
	}
	select {
	case s.events <- ev:
		return true
	case <-s.done:
		return false
	case <-ctx.Done():
		return false
	}
}

func (s *Session) setPhase(p Phase) {
	s.mu.Lock()
	s.phase = p
	s.mu.Unlock()
}

// Run drives the session to PhaseFinished. It returns ErrInsufficientPlayers
// when signup closes below the minimum, the context error when canceled, and
// presenter or ledger errors that stopped the game.
func (s *Session) Run(ctx context.Context) error {
	defer close(s.done)
	defer s.setPhase(PhaseFinished)

	s.setPhase(PhaseSignup)
	signup := signupOpenMessage(s.cfg.Settings.JoinTimeout)
	handle, err := s.cfg.Presenter.AnnounceSignupOpen(ctx, s.cfg.ChannelID, signup)
	if err != nil {
		return fmt.Errorf("announce signup: %w", err)
	}

	if err := s.waitSignup(ctx); err != nil {
		return err
	}

	roster, err := s.freezeRoster(ctx, handle)
	if err != nil {
		return err
	}
	if len(roster) < s.cfg.Settings.MinPlayers {
		s.logger.InfoContext(ctx, "Too few players, ending session",
			slog.Int("players", len(roster)),
			slog.Int("min_players", s.cfg.Settings.MinPlayers),
		)
		s.update(ctx, handle, Message{Title: signup.Title, Body: tooFewPlayersText})
		return ErrInsufficientPlayers
	}
	s.update(ctx, handle, Message{Title: signup.Title, Body: signupClosedText})

	ids := make([]sharedtypes.PlayerID, len(roster))
	members := make(map[sharedtypes.PlayerID]sharedtypes.Participant, len(roster))
	for i, p := range roster {
		ids[i] = p.ID
		members[p.ID] = p
	}
	s.cfg.Ledger.OpenSession(s.cfg.ID, ids)

	s.mu.Lock()
	s.roster = roster
	s.phase = PhaseRunning
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "Session running", slog.Int("players", len(roster)))

	for n := 1; n <= s.cfg.Settings.RoundCount; n++ {
		content, err := s.nextContent()
		if err != nil {
			s.logger.WarnContext(ctx, "No content left, ending session early",
				slog.Int("round", n),
				slog.Any("error", err),
			)
			break
		}

		report := s.playRound(ctx, n, members, content)
		s.mu.Lock()
		s.reports = append(s.reports, report)
		s.mu.Unlock()

		if report.Outcome == RoundCanceled {
			s.cfg.Ledger.DiscardSession(s.cfg.ID)
			return ctx.Err()
		}
	}

	return s.conclude(ctx)
}

func (s *Session) waitSignup(ctx context.Context) error {
	deadline := time.NewTimer(s.cfg.Settings.JoinTimeout)
	defer deadline.Stop()

	select {
	case <-deadline.C:
	case <-s.control:
		s.logger.InfoContext(ctx, "Signup closed early")
	case <-ctx.Done():
		return ctx.Err()
	}
	return nil
}

// freezeRoster reads who signed up, dropping bots and duplicates.
func (s *Session) freezeRoster(ctx context.Context, handle MessageHandle) ([]sharedtypes.Participant, error) {
	participants, err := s.cfg.Presenter.ReadSignupRoster(ctx, handle)
	if err != nil {
		return nil, fmt.Errorf("read signup roster: %w", err)
	}
	seen := make(map[sharedtypes.PlayerID]struct{}, len(participants))
	roster := make([]sharedtypes.Participant, 0, len(participants))
	for _, p := range participants {
		if p.Bot || p.ID == "" {
			continue
		}
		if _, dup := seen[p.ID]; dup {
			continue
		}
		seen[p.ID] = struct{}{}
		roster = append(roster, p)
	}
	return roster, nil
}

// nextContent deals the next round. An exhausted deck is reset once.
func (s *Session) nextContent() (RoundContent, error) {
	content, err := s.cfg.Deck.Next()
	if errors.Is(err, catalogdomain.ErrExhausted) {
		s.cfg.Deck.Reset()
		content, err = s.cfg.Deck.Next()
	}
	return content, err
}

func (s *Session) playRound(
	ctx context.Context,
	n int,
	members map[sharedtypes.PlayerID]sharedtypes.Participant,
	content RoundContent,
) RoundReport {
	s.drain()

	handle, err := s.cfg.Presenter.SendRoundPrompt(ctx, s.cfg.ChannelID, content.Prompt())
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to post round prompt, skipping round",
			slog.Int("round", n),
			slog.Any("error", err),
		)
		report := RoundReport{Number: n, Outcome: RoundSkipped}
		if ctx.Err() != nil {
			report.Outcome = RoundCanceled
		}
		s.cfg.Metrics.RecordRoundFinished(ctx, string(report.Outcome))
		return report
	}

	edits := s.startEdits(ctx, handle)

	round := &Round{
		Number:  n,
		Content: content,
		Roster:  members,
		Timeout: s.cfg.Settings.GuessTimeout,
		Events:  s.events,
		Skip:    s.control,
		Award: func(player sharedtypes.PlayerID) {
			s.cfg.Ledger.RecordRoundPoint(s.cfg.ID, player)
		},
		Progress: func(_ context.Context, msg Message) {
			edits.push(msg)
		},
		Logger:  s.logger,
		Metrics: s.cfg.Metrics,
	}
	if s.cfg.CloseGuessHints {
		round.Near = func(ctx context.Context, ev Event) {
			if err := s.cfg.Presenter.React(ctx, s.cfg.ChannelID, ev.MessageID, HintEmoji); err != nil {
				s.logger.WarnContext(ctx, "Failed to add hint reaction", slog.Any("error", err))
			}
		}
	}

	report := round.Run(ctx)
	edits.close()
	s.cfg.Metrics.RecordRoundFinished(ctx, string(report.Outcome))
	s.logger.InfoContext(ctx, "Round finished",
		slog.Int("round", n),
		slog.String("outcome", string(report.Outcome)),
		slog.Int("points", len(report.Awarded)),
	)

	if report.Outcome != RoundCanceled {
		s.update(ctx, handle, content.Summary())
	}
	return report
}

// drain drops messages and control signals left over from between rounds. A
// pending skip belongs to the round that already ended.
func (s *Session) drain() {
	for {
		select {
		case <-s.events:
		case <-s.control:
		default:
			return
		}
	}
}

// progressEdits publishes round progress from its own goroutine so a
// throttled edit never holds up scoring. Only the latest pending message is
// kept.
type progressEdits struct {
	pending chan Message
	done    chan struct{}
}

func (s *Session) startEdits(ctx context.Context, handle MessageHandle) *progressEdits {
	e := &progressEdits{
		pending: make(chan Message, 1),
		done:    make(chan struct{}),
	}
	go func() {
		defer close(e.done)
		for msg := range e.pending {
			s.update(ctx, handle, msg)
		}
	}()
	return e
}

// push replaces any unpublished message with msg. It must be called from a
// single goroutine.
func (e *progressEdits) push(msg Message) {
	for {
		select {
		case e.pending <- msg:
			return
		default:
		}
		select {
		case <-e.pending:
		default:
		}
	}
}

// close waits until the last pushed message is published.
func (e *progressEdits) close() {
	close(e.pending)
	<-e.done
}

func (s *Session) update(ctx context.Context, handle MessageHandle, msg Message) {
	if err := s.cfg.Presenter.UpdateMessage(ctx, handle, msg); err != nil {
		s.logger.WarnContext(ctx, "Failed to update message",
			slog.String("handle", string(handle)),
			slog.Any("error", err),
		)
	}
}

// conclude persists the session points and posts the final leaderboard. The
// leaderboard is posted even when persisting fails.
func (s *Session) conclude(ctx context.Context) error {
	standings := s.cfg.Ledger.SessionStandings(s.cfg.ID)

	var finalizeErr error
	res, err := s.cfg.Ledger.FinalizeSession(ctx, s.cfg.GuildID, s.cfg.ID)
	switch {
	case err != nil:
		finalizeErr = fmt.Errorf("finalize session: %w", err)
	case res.Failure != nil:
		s.logger.WarnContext(ctx, "Session points not persisted", slog.String("reason", res.Failure.Reason))
	}

	if err := s.cfg.Presenter.AnnounceResults(ctx, s.cfg.ChannelID, finalMessage(standings)); err != nil {
		return errors.Join(finalizeErr, fmt.Errorf("announce results: %w", err))
	}
	return finalizeErr
}
