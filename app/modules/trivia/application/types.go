package triviaservice

import (
	"github.com/Black-And-White-Club/trivia-bot/internal/sharedtypes"
)

// Phase is the lifecycle position of a session.
type Phase int

const (
	PhaseInactive Phase = iota
	PhaseSignup
	PhaseRunning
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseSignup:
		return "signup"
	case PhaseRunning:
		return "running"
	case PhaseFinished:
		return "finished"
	default:
		return "inactive"
	}
}

// Message is a titled chat message.
type Message struct {
	Title string
	Body  string
}

// MessageHandle identifies a message posted through the presenter.
type MessageHandle string

// Event is one participant message seen in a session's channel.
type Event struct {
	Author    sharedtypes.Participant
	MessageID string
	Text      string
}

// RoundOutcome is how a round ended.
type RoundOutcome string

const (
	RoundCompleted RoundOutcome = "completed"
	RoundTimedOut  RoundOutcome = "timeout"
	RoundSkipped   RoundOutcome = "skipped"
	RoundCanceled  RoundOutcome = "canceled"
)

// RoundReport summarizes a finished round.
type RoundReport struct {
	Number  int
	Outcome RoundOutcome
	// Awarded lists the authors of point-earning guesses in order.
	Awarded []sharedtypes.PlayerID
}

// Session outcomes reported to metrics.
const (
	OutcomeCompleted           = "completed"
	OutcomeInsufficientPlayers = "insufficient_players"
	OutcomeCanceled            = "canceled"
	OutcomeFailed              = "failed"
)
