package guilddb

import (
	"context"

	"github.com/uptrace/bun"
)

//go:generate mockgen -source=interface.go -destination=mocks/mock_repository.go -package=mocks

// UpdateFields represents the updateable fields of a guild config.
// Pointer fields distinguish "not provided" (nil) from "set to zero value".
type UpdateFields struct {
	JoinTimeout  *int
	GuessTimeout *int
	RoundCount   *int
	MinPlayers   *int
}

// IsEmpty reports whether any fields are set for update.
func (u *UpdateFields) IsEmpty() bool {
	if u == nil {
		return true
	}
	return u.JoinTimeout == nil &&
		u.GuessTimeout == nil &&
		u.RoundCount == nil &&
		u.MinPlayers == nil
}

// Apply copies the set fields onto cfg.
func (u *UpdateFields) Apply(cfg *GuildConfig) {
	if u == nil || cfg == nil {
		return
	}
	if u.JoinTimeout != nil {
		cfg.JoinTimeout = *u.JoinTimeout
	}
	if u.GuessTimeout != nil {
		cfg.GuessTimeout = *u.GuessTimeout
	}
	if u.RoundCount != nil {
		cfg.RoundCount = *u.RoundCount
	}
	if u.MinPlayers != nil {
		cfg.MinPlayers = *u.MinPlayers
	}
}

// Repository defines the contract for guild configuration persistence.
// A nil bun.IDB uses the repository's own connection.
//
// Error semantics:
//   - ErrNotFound: Record does not exist (GetConfig)
//   - ErrNoRowsAffected: UPDATE matched no rows
//   - Other errors: Infrastructure failures (DB connection, query errors)
type Repository interface {
	// GetConfig retrieves a guild configuration by ID.
	GetConfig(ctx context.Context, db bun.IDB, guildID string) (*GuildConfig, error)

	// SaveConfig inserts or fully replaces a guild configuration.
	SaveConfig(ctx context.Context, db bun.IDB, config *GuildConfig) error

	// UpdateConfig applies partial updates to an existing configuration.
	UpdateConfig(ctx context.Context, db bun.IDB, guildID string, updates *UpdateFields) error

	// DeleteConfig removes the guild's overrides. Idempotent.
	DeleteConfig(ctx context.Context, db bun.IDB, guildID string) error
}
