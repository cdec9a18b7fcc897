package scoreservice

import "errors"

// Domain errors for the score service.
// These represent business failures that handlers report back rather than
// retry.
var (
	// ErrInvalidGuildID indicates an operation was requested without a guild.
	ErrInvalidGuildID = errors.New("invalid guild id")

	// ErrUnknownSession indicates a finalize for a session that was never
	// opened or was already finalized.
	ErrUnknownSession = errors.New("unknown session")
)
