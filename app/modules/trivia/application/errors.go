package triviaservice

import "errors"

var (
	// ErrSessionConflict is returned for a start request in a channel that
	// already has a session in signup or running.
	ErrSessionConflict = errors.New("a game is already active in this channel")
	// ErrNoActiveSession is returned for a force start without a session.
	ErrNoActiveSession = errors.New("no active game in this channel")
	// ErrInsufficientPlayers ends a session whose roster is below the minimum.
	ErrInsufficientPlayers = errors.New("too few players to start game")
	// ErrInvalidChannel rejects requests without a guild or channel.
	ErrInvalidChannel = errors.New("guild and channel are required")
)
