package triviaservice

import (
	"fmt"
	"time"

	leaderboardservice "github.com/Black-And-White-Club/trivia-bot/app/modules/leaderboard/application"
	scoredomain "github.com/Black-And-White-Club/trivia-bot/app/modules/score/domain"
)

const (
	signupTitle       = "Signups opened for new game of Minecraft trivia"
	signupClosedText  = "Signups are now closed. Wait for the game to finish to start a new one."
	tooFewPlayersText = "Too few players to start game."
	finishedTitle     = "Minecraft Trivia Finished"
)

func signupOpenMessage(joinTimeout time.Duration) Message {
	return Message{
		Title: signupTitle,
		Body: fmt.Sprintf("React to this message in order to join. You have %d seconds to signup.",
			int(joinTimeout/time.Second)),
	}
}

// finalMessage ranks the session points. Ties keep roster order.
func finalMessage(standings []scoredomain.PlayerPoints) Message {
	entries := make([]leaderboardservice.Entry, len(standings))
	for i, p := range standings {
		entries[i] = leaderboardservice.Entry{Player: p.Player, Points: int64(p.Points)}
	}
	ranked := leaderboardservice.Rank(entries, leaderboardservice.DefaultLimit)
	return Message{Title: finishedTitle, Body: leaderboardservice.FormatText(ranked)}
}
