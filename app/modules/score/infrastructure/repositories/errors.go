package scoredb

import "errors"

// Sentinel errors for the repository layer.
var (
	// ErrInvalidColumn indicates a leaderboard query against a column that is
	// not a player stat.
	ErrInvalidColumn = errors.New("invalid stat column")
)
