package guilddb

import "errors"

// Sentinel errors for the repository layer.
var (
	// ErrNotFound indicates the guild has no stored configuration.
	ErrNotFound = errors.New("guild config not found")

	// ErrNoRowsAffected indicates an UPDATE or DELETE matched no rows.
	ErrNoRowsAffected = errors.New("no rows affected")
)
