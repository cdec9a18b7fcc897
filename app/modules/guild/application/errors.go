package guildservice

import "errors"

// Domain errors. Handlers treat these as normal failures (publish failure
// event, ack message) rather than retrying.
var (
	ErrInvalidGuildID     = errors.New("invalid guild id")
	ErrNoUpdates          = errors.New("no settings to update")
	ErrNonPositiveSetting = errors.New("settings must be positive integers")
)
