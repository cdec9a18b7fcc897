// Package sharedtypes holds the identifiers passed between modules.
package sharedtypes

import "fmt"

// GuildID is a Discord guild snowflake.
type GuildID string

func (id GuildID) String() string { return string(id) }

// ChannelID is a Discord channel snowflake.
type ChannelID string

func (id ChannelID) String() string { return string(id) }

// PlayerID is a Discord user snowflake.
type PlayerID string

func (id PlayerID) String() string { return string(id) }

// Mention renders the chat mention for a player.
func (id PlayerID) Mention() string { return fmt.Sprintf("<@%s>", string(id)) }

// SessionID identifies one game session.
type SessionID string

func (id SessionID) String() string { return string(id) }

// Participant is a player as seen by the chat transport.
type Participant struct {
	ID     PlayerID `json:"id"`
	Handle string   `json:"handle"`
	Bot    bool     `json:"bot,omitempty"`
}
