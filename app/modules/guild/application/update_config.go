package guildservice

import (
	"context"

	guilddb "github.com/Black-And-White-Club/trivia-bot/app/modules/guild/infrastructure/repositories"
	"github.com/Black-And-White-Club/trivia-bot/internal/results"
	"github.com/Black-And-White-Club/trivia-bot/internal/sharedtypes"
)

// UpdateGuildConfig applies the provided settings on top of the effective
// configuration and stores the full row. All values must be positive.
func (s *GuildService) UpdateGuildConfig(ctx context.Context, guildID sharedtypes.GuildID, update SettingsUpdate) (GuildConfigResult, error) {
	return s.withTelemetry(ctx, "UpdateGuildConfig", guildID, func(ctx context.Context) (GuildConfigResult, error) {
		fail := func(err error) (GuildConfigResult, error) {
			return results.FailureResult[GameSettings](ConfigFailure{GuildID: guildID, Reason: err.Error()}), nil
		}
		if guildID == "" {
			return fail(ErrInvalidGuildID)
		}
		fields := &guilddb.UpdateFields{
			JoinTimeout:  update.JoinTimeout,
			GuessTimeout: update.GuessTimeout,
			RoundCount:   update.RoundCount,
			MinPlayers:   update.MinPlayers,
		}
		if fields.IsEmpty() {
			return fail(ErrNoUpdates)
		}
		for _, v := range []*int{fields.JoinTimeout, fields.GuessTimeout, fields.RoundCount, fields.MinPlayers} {
			if v != nil && *v <= 0 {
				return fail(ErrNonPositiveSetting)
			}
		}

		current, err := s.Settings(ctx, guildID)
		if err != nil {
			return GuildConfigResult{}, err
		}
		row := toRow(current)
		fields.Apply(row)
		if err := s.repo.SaveConfig(ctx, nil, row); err != nil {
			return GuildConfigResult{}, err
		}
		return results.SuccessResult[GameSettings, ConfigFailure](fromRow(row)), nil
	})
}

// ResetGuildConfig drops the guild's overrides so defaults apply again.
func (s *GuildService) ResetGuildConfig(ctx context.Context, guildID sharedtypes.GuildID) (GuildConfigResult, error) {
	return s.withTelemetry(ctx, "ResetGuildConfig", guildID, func(ctx context.Context) (GuildConfigResult, error) {
		if guildID == "" {
			return results.FailureResult[GameSettings](ConfigFailure{Reason: ErrInvalidGuildID.Error()}), nil
		}
		if err := s.repo.DeleteConfig(ctx, nil, string(guildID)); err != nil {
			return GuildConfigResult{}, err
		}
		d := s.defaults
		d.GuildID = guildID
		return results.SuccessResult[GameSettings, ConfigFailure](d), nil
	})
}

func (s *GuildService) SetJoinTimeout(ctx context.Context, guildID sharedtypes.GuildID, seconds int) (GuildConfigResult, error) {
	return s.UpdateGuildConfig(ctx, guildID, SettingsUpdate{JoinTimeout: &seconds})
}

func (s *GuildService) SetGuessTimeout(ctx context.Context, guildID sharedtypes.GuildID, seconds int) (GuildConfigResult, error) {
	return s.UpdateGuildConfig(ctx, guildID, SettingsUpdate{GuessTimeout: &seconds})
}

func (s *GuildService) SetRoundCount(ctx context.Context, guildID sharedtypes.GuildID, rounds int) (GuildConfigResult, error) {
	return s.UpdateGuildConfig(ctx, guildID, SettingsUpdate{RoundCount: &rounds})
}

func (s *GuildService) SetMinPlayers(ctx context.Context, guildID sharedtypes.GuildID, players int) (GuildConfigResult, error) {
	return s.UpdateGuildConfig(ctx, guildID, SettingsUpdate{MinPlayers: &players})
}
