package leaderboardservice

import "errors"

var ErrUnknownKind = errors.New("unknown leaderboard kind")
