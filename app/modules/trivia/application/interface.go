package triviaservice

import (
	"context"

	guildservice "github.com/Black-And-White-Club/trivia-bot/app/modules/guild/application"
	scoreservice "github.com/Black-And-White-Club/trivia-bot/app/modules/score/application"
	scoredomain "github.com/Black-And-White-Club/trivia-bot/app/modules/score/domain"
	"github.com/Black-And-White-Club/trivia-bot/internal/results"
	"github.com/Black-And-White-Club/trivia-bot/internal/sharedtypes"
)

// Presenter is the chat side of a session.
type Presenter interface {
	// AnnounceSignupOpen posts the signup message with the join reaction.
	AnnounceSignupOpen(ctx context.Context, channelID sharedtypes.ChannelID, msg Message) (MessageHandle, error)
	// ReadSignupRoster returns the non-bot users that reacted to the signup message.
	ReadSignupRoster(ctx context.Context, handle MessageHandle) ([]sharedtypes.Participant, error)
	SendRoundPrompt(ctx context.Context, channelID sharedtypes.ChannelID, msg Message) (MessageHandle, error)
	UpdateMessage(ctx context.Context, handle MessageHandle, msg Message) error
	// AnnounceResults posts the final leaderboard of a session.
	AnnounceResults(ctx context.Context, channelID sharedtypes.ChannelID, msg Message) error
	// React adds emoji to a participant's message.
	React(ctx context.Context, channelID sharedtypes.ChannelID, messageID, emoji string) error
}

// Ledger is the score ledger as used by sessions.
type Ledger interface {
	OpenSession(sessionID sharedtypes.SessionID, roster []sharedtypes.PlayerID)
	RecordRoundPoint(sessionID sharedtypes.SessionID, player sharedtypes.PlayerID) int
	SessionStandings(sessionID sharedtypes.SessionID) []scoredomain.PlayerPoints
	DiscardSession(sessionID sharedtypes.SessionID)
	FinalizeSession(ctx context.Context, guildID sharedtypes.GuildID, sessionID sharedtypes.SessionID) (scoreservice.FinalizeOperationResult, error)
}

// SettingsProvider returns a guild's effective game settings.
type SettingsProvider interface {
	Settings(ctx context.Context, guildID sharedtypes.GuildID) (guildservice.GameSettings, error)
}

// SessionInfo describes a session accepted by StartSession.
type SessionInfo struct {
	SessionID sharedtypes.SessionID `json:"session_id"`
	GuildID   sharedtypes.GuildID   `json:"guild_id"`
	ChannelID sharedtypes.ChannelID `json:"channel_id"`
}

// RequestFailure is the business failure payload of session requests.
type RequestFailure struct {
	GuildID   sharedtypes.GuildID   `json:"guild_id"`
	ChannelID sharedtypes.ChannelID `json:"channel_id"`
	Err       error                 `json:"-"`
}

type (
	StartSessionResult = results.OperationResult[SessionInfo, RequestFailure]
	ForceStartResult   = results.OperationResult[SessionInfo, RequestFailure]
)

// Service runs trivia sessions, at most one per channel.
type Service interface {
	// StartSession opens signup in a channel, or fails with ErrSessionConflict.
	StartSession(ctx context.Context, guildID sharedtypes.GuildID, channelID sharedtypes.ChannelID, requestedBy sharedtypes.PlayerID) (StartSessionResult, error)
	// ForceStartNow closes signup early, or skips the current round of a
	// running session. Fails with ErrNoActiveSession.
	ForceStartNow(ctx context.Context, guildID sharedtypes.GuildID, channelID sharedtypes.ChannelID) (ForceStartResult, error)
	// Deliver routes a chat message to the channel's running session. It
	// reports whether a session took the message.
	Deliver(ctx context.Context, channelID sharedtypes.ChannelID, ev Event) bool
	// ActivePhase reports the phase of the channel's session, PhaseInactive if none.
	ActivePhase(channelID sharedtypes.ChannelID) Phase
}
