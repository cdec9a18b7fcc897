package scoremigrations

import (
	"context"
	"fmt"

	scoredb "github.com/Black-And-White-Club/trivia-bot/app/modules/score/infrastructure/repositories"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating trivia_player_stats table...")

		if _, err := db.NewCreateTable().Model((*scoredb.PlayerStats)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}

		fmt.Println("trivia_player_stats table created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping trivia_player_stats table...")

		if _, err := db.NewDropTable().Model((*scoredb.PlayerStats)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}

		fmt.Println("trivia_player_stats table dropped successfully!")
		return nil
	})
}
