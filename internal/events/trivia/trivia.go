// Package triviaevents defines the game session topics and payloads
// exchanged with the Discord gateway.
package triviaevents

import "github.com/Black-And-White-Club/trivia-bot/internal/sharedtypes"

// Inbound topics.
const (
	SessionStartRequestedV1 = "trivia.session.start.requested.v1"
	ForceStartRequestedV1   = "trivia.session.force_start.requested.v1"
	MessageReceivedV1       = "trivia.message.received.v1"
	SignupReactionV1        = "trivia.signup.reaction.v1"
)

// Outbound topics.
const (
	SessionStartedV1     = "trivia.session.started.v1"
	SessionStartFailedV1 = "trivia.session.start.failed.v1"
	ForceStartedV1       = "trivia.session.force_started.v1"
	ForceStartFailedV1   = "trivia.session.force_start.failed.v1"
)

// Failure reasons reported to the requester.
const (
	ReasonAlreadyActive   = "already-active"
	ReasonNoActiveSession = "no-active-session"
	ReasonInvalidRequest  = "invalid-request"
)

// SessionStartRequestedPayloadV1 asks for a new session in a channel.
type SessionStartRequestedPayloadV1 struct {
	GuildID     sharedtypes.GuildID   `json:"guild_id"`
	ChannelID   sharedtypes.ChannelID `json:"channel_id"`
	RequestedBy sharedtypes.PlayerID  `json:"requested_by"`
}

// SessionStartedPayloadV1 confirms a session entered signup.
type SessionStartedPayloadV1 struct {
	GuildID   sharedtypes.GuildID   `json:"guild_id"`
	ChannelID sharedtypes.ChannelID `json:"channel_id"`
	SessionID sharedtypes.SessionID `json:"session_id"`
}

// SessionStartFailedPayloadV1 reports a rejected start request.
type SessionStartFailedPayloadV1 struct {
	GuildID   sharedtypes.GuildID   `json:"guild_id"`
	ChannelID sharedtypes.ChannelID `json:"channel_id"`
	Reason    string                `json:"reason"`
}

// ForceStartRequestedPayloadV1 closes signup early.
type ForceStartRequestedPayloadV1 struct {
	GuildID   sharedtypes.GuildID   `json:"guild_id"`
	ChannelID sharedtypes.ChannelID `json:"channel_id"`
}

// ForceStartedPayloadV1 acknowledges a force start.
type ForceStartedPayloadV1 struct {
	GuildID   sharedtypes.GuildID   `json:"guild_id"`
	ChannelID sharedtypes.ChannelID `json:"channel_id"`
}

// ForceStartFailedPayloadV1 reports a force start without an active session.
type ForceStartFailedPayloadV1 struct {
	GuildID   sharedtypes.GuildID   `json:"guild_id"`
	ChannelID sharedtypes.ChannelID `json:"channel_id"`
	Reason    string                `json:"reason"`
}

// MessageReceivedPayloadV1 is one chat message seen in a guild channel.
type MessageReceivedPayloadV1 struct {
	GuildID   sharedtypes.GuildID     `json:"guild_id"`
	ChannelID sharedtypes.ChannelID   `json:"channel_id"`
	MessageID string                  `json:"message_id"`
	Author    sharedtypes.Participant `json:"author"`
	Content   string                  `json:"content"`
}

// SignupReactionPayloadV1 is a reaction added to or removed from a message
// the backend sent. Handle is the backend's message handle.
type SignupReactionPayloadV1 struct {
	Handle  string                  `json:"handle"`
	User    sharedtypes.Participant `json:"user"`
	Emoji   string                  `json:"emoji"`
	Removed bool                    `json:"removed"`
}
