package guildhandlers

import (
	"context"

	guildservice "github.com/Black-And-White-Club/trivia-bot/app/modules/guild/application"
	"github.com/Black-And-White-Club/trivia-bot/internal/sharedtypes"
)

// ------------------------
// Fake Guild Service
// ------------------------

// FakeGuildService provides a programmable stub for the guildservice.Service interface.
type FakeGuildService struct {
	trace []string

	SettingsFunc          func(ctx context.Context, guildID sharedtypes.GuildID) (guildservice.GameSettings, error)
	GetGuildConfigFunc    func(ctx context.Context, guildID sharedtypes.GuildID) (guildservice.GuildConfigResult, error)
	UpdateGuildConfigFunc func(ctx context.Context, guildID sharedtypes.GuildID, update guildservice.SettingsUpdate) (guildservice.GuildConfigResult, error)
	ResetGuildConfigFunc  func(ctx context.Context, guildID sharedtypes.GuildID) (guildservice.GuildConfigResult, error)
}

// NewFakeGuildService initializes a new FakeGuildService.
func NewFakeGuildService() *FakeGuildService {
	return &FakeGuildService{
		trace: []string{},
	}
}

func (f *FakeGuildService) record(step string) {
	f.trace = append(f.trace, step)
}

// Trace returns the sequence of service methods called.
func (f *FakeGuildService) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

// --- Service Interface Implementation ---

func (f *FakeGuildService) Settings(ctx context.Context, guildID sharedtypes.GuildID) (guildservice.GameSettings, error) {
	f.record("Settings")
	if f.SettingsFunc != nil {
		return f.SettingsFunc(ctx, guildID)
	}
	return guildservice.GameSettings{GuildID: guildID}, nil
}

func (f *FakeGuildService) GetGuildConfig(ctx context.Context, guildID sharedtypes.GuildID) (guildservice.GuildConfigResult, error) {
	f.record("GetGuildConfig")
	if f.GetGuildConfigFunc != nil {
		return f.GetGuildConfigFunc(ctx, guildID)
	}
	return guildservice.GuildConfigResult{}, nil
}

func (f *FakeGuildService) UpdateGuildConfig(ctx context.Context, guildID sharedtypes.GuildID, update guildservice.SettingsUpdate) (guildservice.GuildConfigResult, error) {
	f.record("UpdateGuildConfig")
	if f.UpdateGuildConfigFunc != nil {
		return f.UpdateGuildConfigFunc(ctx, guildID, update)
	}
	return guildservice.GuildConfigResult{}, nil
}

func (f *FakeGuildService) ResetGuildConfig(ctx context.Context, guildID sharedtypes.GuildID) (guildservice.GuildConfigResult, error) {
	f.record("ResetGuildConfig")
	if f.ResetGuildConfigFunc != nil {
		return f.ResetGuildConfigFunc(ctx, guildID)
	}
	return guildservice.GuildConfigResult{}, nil
}

func (f *FakeGuildService) SetJoinTimeout(ctx context.Context, guildID sharedtypes.GuildID, seconds int) (guildservice.GuildConfigResult, error) {
	f.record("SetJoinTimeout")
	return f.UpdateGuildConfig(ctx, guildID, guildservice.SettingsUpdate{JoinTimeout: &seconds})
}

func (f *FakeGuildService) SetGuessTimeout(ctx context.Context, guildID sharedtypes.GuildID, seconds int) (guildservice.GuildConfigResult, error) {
	f.record("SetGuessTimeout")
	return f.UpdateGuildConfig(ctx, guildID, guildservice.SettingsUpdate{GuessTimeout: &seconds})
}

func (f *FakeGuildService) SetRoundCount(ctx context.Context, guildID sharedtypes.GuildID, rounds int) (guildservice.GuildConfigResult, error) {
	f.record("SetRoundCount")
	return f.UpdateGuildConfig(ctx, guildID, guildservice.SettingsUpdate{RoundCount: &rounds})
}

func (f *FakeGuildService) SetMinPlayers(ctx context.Context, guildID sharedtypes.GuildID, players int) (guildservice.GuildConfigResult, error) {
	f.record("SetMinPlayers")
	return f.UpdateGuildConfig(ctx, guildID, guildservice.SettingsUpdate{MinPlayers: &players})
}

var _ guildservice.Service = (*FakeGuildService)(nil)
