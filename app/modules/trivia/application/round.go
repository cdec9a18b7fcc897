package triviaservice

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Black-And-White-Club/trivia-bot/internal/observability"
	"github.com/Black-And-White-Club/trivia-bot/internal/sharedtypes"
)

// HintEmoji marks answers that were close to a remaining one.
const HintEmoji = "🤏"

// Round runs one round of content. All fields except the callbacks are
// required. The roster and the content are owned by the goroutine calling Run.
type Round struct {
	Number  int
	Content RoundContent
	Roster  map[sharedtypes.PlayerID]sharedtypes.Participant
	Timeout time.Duration

	// Events carries participant messages in arrival order.
	Events <-chan Event
	// Skip ends the round early, keeping the points already awarded.
	Skip <-chan struct{}

	// Award is called once per point-earning answer.
	Award func(player sharedtypes.PlayerID)
	// Progress is called with the updated round message after each award.
	// It runs on the scoring path and should not block.
	Progress func(ctx context.Context, msg Message)
	// Near is called for answers the content considers close.
	Near func(ctx context.Context, ev Event)

	Logger  *slog.Logger
	Metrics observability.TriviaMetrics
}

// Run consumes events until the content is complete, the deadline passes,
// Skip fires or ctx is canceled. The deadline is fixed when Run starts and
// no message read after it passes is scored.
func (r *Round) Run(ctx context.Context) RoundReport {
	report := RoundReport{Number: r.Number}

	deadlineAt := time.Now().Add(r.Timeout)
	deadline := time.NewTimer(r.Timeout)
	defer deadline.Stop()

	events := r.Events

	for !r.Content.Complete() {
		select {
		case <-ctx.Done():
			report.Outcome = RoundCanceled
			return report
		case <-r.Skip:
			report.Outcome = RoundSkipped
			return report
		case <-deadline.C:
			report.Outcome = RoundTimedOut
			return report
		case ev, open := <-events:
			if !open {
				events = nil
				continue
			}
			if !time.Now().Before(deadlineAt) {
				report.Outcome = RoundTimedOut
				return report
			}
			if _, ok := r.Roster[ev.Author.ID]; !ok || ev.Author.Bot {
				continue
			}
			matched, err := r.apply(ctx, ev)
			if err != nil {
				r.Logger.ErrorContext(ctx, "Skipping participant message",
					slog.Int("round", r.Number),
					slog.String("player_id", string(ev.Author.ID)),
					slog.Any("error", err),
				)
				r.Metrics.RecordEventFault(ctx)
				continue
			}
			if matched {
				report.Awarded = append(report.Awarded, ev.Author.ID)
			}
		}
	}

	report.Outcome = RoundCompleted
	return report
}

// apply scores one event. A panic while scoring is turned into an error so
// the round goes on with the progress made so far.
func (r *Round) apply(ctx context.Context, ev Event) (matched bool, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			matched = false
			err = fmt.Errorf("panic while scoring message: %v", rec)
		}
	}()

	matched = r.Content.Guess(ev.Author, ev.Text)
	r.Metrics.RecordGuess(ctx, matched)
	if matched {
		if r.Award != nil {
			r.Award(ev.Author.ID)
		}
		if r.Progress != nil {
			r.Progress(ctx, r.Content.Progress())
		}
		return true, nil
	}
	if r.Near != nil && r.Content.Near(ev.Text) {
		r.Near(ctx, ev)
	}
	return false, nil
}
