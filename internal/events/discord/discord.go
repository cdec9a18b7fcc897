// Package discordevents defines the outbound commands the Discord gateway
// executes on behalf of the backend.
package discordevents

import "github.com/Black-And-White-Club/trivia-bot/internal/sharedtypes"

const (
	MessageSendV1 = "discord.trivia.message.send.v1"
	MessageEditV1 = "discord.trivia.message.edit.v1"
	ReactionAddV1 = "discord.trivia.reaction.add.v1"
)

// MessageSendPayloadV1 posts a new embed. Handle is chosen by the backend and
// identifies the message in later edits and reaction events.
type MessageSendPayloadV1 struct {
	Handle    string                `json:"handle"`
	ChannelID sharedtypes.ChannelID `json:"channel_id"`
	Title     string                `json:"title"`
	Body      string                `json:"body"`
	// Reaction is added by the gateway right after posting.
	Reaction string `json:"reaction,omitempty"`
}

// MessageEditPayloadV1 replaces the content of a message sent earlier.
type MessageEditPayloadV1 struct {
	Handle    string                `json:"handle"`
	ChannelID sharedtypes.ChannelID `json:"channel_id"`
	Title     string                `json:"title"`
	Body      string                `json:"body"`
}

// ReactionAddPayloadV1 reacts to a participant's chat message.
type ReactionAddPayloadV1 struct {
	ChannelID sharedtypes.ChannelID `json:"channel_id"`
	MessageID string                `json:"message_id"`
	Emoji     string                `json:"emoji"`
}
