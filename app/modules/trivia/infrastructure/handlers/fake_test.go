package triviahandlers

import (
	"context"

	triviaservice "github.com/Black-And-White-Club/trivia-bot/app/modules/trivia/application"
	triviaevents "github.com/Black-And-White-Club/trivia-bot/internal/events/trivia"
	"github.com/Black-And-White-Club/trivia-bot/internal/sharedtypes"
)

// FakeTriviaService is a programmable fake for triviaservice.Service.
type FakeTriviaService struct {
	trace     []string
	delivered []triviaservice.Event

	StartSessionFunc  func(ctx context.Context, guildID sharedtypes.GuildID, channelID sharedtypes.ChannelID, requestedBy sharedtypes.PlayerID) (triviaservice.StartSessionResult, error)
	ForceStartNowFunc func(ctx context.Context, guildID sharedtypes.GuildID, channelID sharedtypes.ChannelID) (triviaservice.ForceStartResult, error)
	DeliverResult     bool
}

func NewFakeTriviaService() *FakeTriviaService {
	return &FakeTriviaService{trace: []string{}}
}

func (f *FakeTriviaService) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeTriviaService) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeTriviaService) StartSession(ctx context.Context, guildID sharedtypes.GuildID, channelID sharedtypes.ChannelID, requestedBy sharedtypes.PlayerID) (triviaservice.StartSessionResult, error) {
	f.record("StartSession")
	if f.StartSessionFunc != nil {
		return f.StartSessionFunc(ctx, guildID, channelID, requestedBy)
	}
	return triviaservice.StartSessionResult{}, nil
}

func (f *FakeTriviaService) ForceStartNow(ctx context.Context, guildID sharedtypes.GuildID, channelID sharedtypes.ChannelID) (triviaservice.ForceStartResult, error) {
	f.record("ForceStartNow")
	if f.ForceStartNowFunc != nil {
		return f.ForceStartNowFunc(ctx, guildID, channelID)
	}
	return triviaservice.ForceStartResult{}, nil
}

func (f *FakeTriviaService) Deliver(ctx context.Context, channelID sharedtypes.ChannelID, ev triviaservice.Event) bool {
	f.record("Deliver")
	f.delivered = append(f.delivered, ev)
	return f.DeliverResult
}

func (f *FakeTriviaService) ActivePhase(channelID sharedtypes.ChannelID) triviaservice.Phase {
	f.record("ActivePhase")
	return triviaservice.PhaseInactive
}

// FakeSignupRoster records reactions.
type FakeSignupRoster struct {
	reactions []triviaevents.SignupReactionPayloadV1
}

func (f *FakeSignupRoster) RecordReaction(ctx context.Context, ev triviaevents.SignupReactionPayloadV1) bool {
	f.reactions = append(f.reactions, ev)
	return true
}

var (
	_ triviaservice.Service = (*FakeTriviaService)(nil)
	_ SignupRoster          = (*FakeSignupRoster)(nil)
)
