package guildservice

import (
	"context"
	"errors"

	guilddb "github.com/Black-And-White-Club/trivia-bot/app/modules/guild/infrastructure/repositories"
	"github.com/Black-And-White-Club/trivia-bot/internal/results"
	"github.com/Black-And-White-Club/trivia-bot/internal/sharedtypes"
)

// Settings returns the guild's stored settings or the service defaults.
func (s *GuildService) Settings(ctx context.Context, guildID sharedtypes.GuildID) (GameSettings, error) {
	row, err := s.repo.GetConfig(ctx, nil, string(guildID))
	if errors.Is(err, guilddb.ErrNotFound) {
		d := s.defaults
		d.GuildID = guildID
		return d, nil
	}
	if err != nil {
		return GameSettings{}, err
	}
	return fromRow(row), nil
}

// GetGuildConfig retrieves the effective guild configuration.
func (s *GuildService) GetGuildConfig(ctx context.Context, guildID sharedtypes.GuildID) (GuildConfigResult, error) {
	return s.withTelemetry(ctx, "GetGuildConfig", guildID, func(ctx context.Context) (GuildConfigResult, error) {
		if guildID == "" {
			return results.FailureResult[GameSettings](ConfigFailure{Reason: ErrInvalidGuildID.Error()}), nil
		}
		settings, err := s.Settings(ctx, guildID)
		if err != nil {
			return GuildConfigResult{}, err
		}
		return results.SuccessResult[GameSettings, ConfigFailure](settings), nil
	})
}
