package triviaservice

import (
	"io"
	"log/slog"
	"time"

	catalogdomain "github.com/Black-And-White-Club/trivia-bot/app/modules/catalog/domain"
	guildservice "github.com/Black-And-White-Club/trivia-bot/app/modules/guild/application"
	"github.com/Black-And-White-Club/trivia-bot/internal/observability"
	"github.com/Black-And-White-Club/trivia-bot/internal/sharedtypes"
)

var (
	bob   = sharedtypes.Participant{ID: "100", Handle: "Bob"}
	alice = sharedtypes.Participant{ID: "200", Handle: "Alice"}
	carol = sharedtypes.Participant{ID: "300", Handle: "Carol"}
	robot = sharedtypes.Participant{ID: "900", Handle: "Robot", Bot: true}
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testMetrics() observability.TriviaMetrics {
	return &observability.NoOpTriviaMetrics{}
}

func ing(count int, alts ...catalogdomain.ItemID) catalogdomain.Ingredient {
	return catalogdomain.Ingredient{Alternatives: alts, Count: count}
}

// stickRecipes is a one-recipe source whose only ingredient is a stick.
func stickRecipes() *fakeRecipes {
	return &fakeRecipes{
		recipes: []catalogdomain.Recipe{{
			ID:          "crafting/ladder",
			Result:      "ladder",
			Ingredients: []catalogdomain.Ingredient{ing(7, "stick")},
		}},
		locale: map[catalogdomain.ItemID]string{"stick": "Stick", "ladder": "Ladder"},
	}
}

func testSettings() guildservice.GameSettings {
	return guildservice.GameSettings{
		JoinTimeout:  time.Minute,
		GuessTimeout: time.Minute,
		RoundCount:   1,
		MinPlayers:   2,
	}
}
