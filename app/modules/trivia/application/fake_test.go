package triviaservice

import (
	"context"
	"fmt"
	"sync"

	catalogdomain "github.com/Black-And-White-Club/trivia-bot/app/modules/catalog/domain"
	guildservice "github.com/Black-And-White-Club/trivia-bot/app/modules/guild/application"
	scoreservice "github.com/Black-And-White-Club/trivia-bot/app/modules/score/application"
	scoredomain "github.com/Black-And-White-Club/trivia-bot/app/modules/score/domain"
	"github.com/Black-And-White-Club/trivia-bot/internal/results"
	"github.com/Black-And-White-Club/trivia-bot/internal/sharedtypes"
)

// ------------------------
// Fake Presenter
// ------------------------

type sentMessage struct {
	Handle    MessageHandle
	ChannelID sharedtypes.ChannelID
	Message   Message
}

// FakePresenter records everything a session shows and returns a
// programmable signup roster.
type FakePresenter struct {
	mu      sync.Mutex
	trace   []string
	next    int
	signups []sentMessage
	prompts []sentMessage
	results []sentMessage
	updates map[MessageHandle][]Message
	hints   []string

	Roster                []sharedtypes.Participant
	ReadSignupRosterFunc  func(ctx context.Context, handle MessageHandle) ([]sharedtypes.Participant, error)
	SendRoundPromptFunc   func(ctx context.Context, channelID sharedtypes.ChannelID, msg Message) (MessageHandle, error)
	AnnounceResultsFunc   func(ctx context.Context, channelID sharedtypes.ChannelID, msg Message) error
	UpdateMessageFunc     func(ctx context.Context, handle MessageHandle, msg Message) error
	AnnounceSignupOpenErr error
}

func NewFakePresenter(roster ...sharedtypes.Participant) *FakePresenter {
	return &FakePresenter{
		trace:   []string{},
		updates: make(map[MessageHandle][]Message),
		Roster:  roster,
	}
}

func (f *FakePresenter) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakePresenter) handle() MessageHandle {
	f.next++
	return MessageHandle(fmt.Sprintf("msg-%d", f.next))
}

func (f *FakePresenter) Trace() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakePresenter) Signups() []sentMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]sentMessage(nil), f.signups...)
}

func (f *FakePresenter) Prompts() []sentMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]sentMessage(nil), f.prompts...)
}

func (f *FakePresenter) Results() []sentMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]sentMessage(nil), f.results...)
}

func (f *FakePresenter) Hints() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.hints...)
}

// LastUpdate returns the latest edit of handle.
func (f *FakePresenter) LastUpdate(handle MessageHandle) (Message, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u := f.updates[handle]
	if len(u) == 0 {
		return Message{}, false
	}
	return u[len(u)-1], true
}

func (f *FakePresenter) AnnounceSignupOpen(ctx context.Context, channelID sharedtypes.ChannelID, msg Message) (MessageHandle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("AnnounceSignupOpen")
	if f.AnnounceSignupOpenErr != nil {
		return "", f.AnnounceSignupOpenErr
	}
	h := f.handle()
	f.signups = append(f.signups, sentMessage{Handle: h, ChannelID: channelID, Message: msg})
	return h, nil
}

func (f *FakePresenter) ReadSignupRoster(ctx context.Context, handle MessageHandle) ([]sharedtypes.Participant, error) {
	f.mu.Lock()
	f.record("ReadSignupRoster")
	fn := f.ReadSignupRosterFunc
	roster := append([]sharedtypes.Participant(nil), f.Roster...)
	f.mu.Unlock()
	if fn != nil {
		return fn(ctx, handle)
	}
	return roster, nil
}

func (f *FakePresenter) SendRoundPrompt(ctx context.Context, channelID sharedtypes.ChannelID, msg Message) (MessageHandle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("SendRoundPrompt")
	if f.SendRoundPromptFunc != nil {
		return f.SendRoundPromptFunc(ctx, channelID, msg)
	}
	h := f.handle()
	f.prompts = append(f.prompts, sentMessage{Handle: h, ChannelID: channelID, Message: msg})
	return h, nil
}

func (f *FakePresenter) UpdateMessage(ctx context.Context, handle MessageHandle, msg Message) error {
	f.mu.Lock()
	fn := f.UpdateMessageFunc
	f.mu.Unlock()
	if fn != nil {
		if err := fn(ctx, handle, msg); err != nil {
			return err
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("UpdateMessage")
	f.updates[handle] = append(f.updates[handle], msg)
	return nil
}

func (f *FakePresenter) AnnounceResults(ctx context.Context, channelID sharedtypes.ChannelID, msg Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("AnnounceResults")
	if f.AnnounceResultsFunc != nil {
		return f.AnnounceResultsFunc(ctx, channelID, msg)
	}
	f.results = append(f.results, sentMessage{ChannelID: channelID, Message: msg})
	return nil
}

func (f *FakePresenter) React(ctx context.Context, channelID sharedtypes.ChannelID, messageID, emoji string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("React")
	f.hints = append(f.hints, messageID)
	return nil
}

// ------------------------
// Fake Ledger
// ------------------------

// FakeLedger keeps session points in memory and records finalize calls.
type FakeLedger struct {
	mu        sync.Mutex
	trace     []string
	sessions  map[sharedtypes.SessionID]*scoredomain.SessionPoints
	finalized map[sharedtypes.SessionID][]scoredomain.PlayerPoints

	FinalizeSessionFunc func(ctx context.Context, guildID sharedtypes.GuildID, sessionID sharedtypes.SessionID) (scoreservice.FinalizeOperationResult, error)
}

func NewFakeLedger() *FakeLedger {
	return &FakeLedger{
		trace:     []string{},
		sessions:  make(map[sharedtypes.SessionID]*scoredomain.SessionPoints),
		finalized: make(map[sharedtypes.SessionID][]scoredomain.PlayerPoints),
	}
}

func (f *FakeLedger) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeLedger) Trace() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeLedger) Finalized(sessionID sharedtypes.SessionID) ([]scoredomain.PlayerPoints, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.finalized[sessionID]
	return p, ok
}

func (f *FakeLedger) OpenSession(sessionID sharedtypes.SessionID, roster []sharedtypes.PlayerID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("OpenSession")
	f.sessions[sessionID] = scoredomain.NewSessionPoints(roster...)
}

func (f *FakeLedger) RecordRoundPoint(sessionID sharedtypes.SessionID, player sharedtypes.PlayerID) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("RecordRoundPoint")
	sp, ok := f.sessions[sessionID]
	if !ok {
		sp = scoredomain.NewSessionPoints()
		f.sessions[sessionID] = sp
	}
	return sp.Add(player, 1)
}

func (f *FakeLedger) SessionStandings(sessionID sharedtypes.SessionID) []scoredomain.PlayerPoints {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("SessionStandings")
	if sp, ok := f.sessions[sessionID]; ok {
		return sp.Snapshot()
	}
	return nil
}

func (f *FakeLedger) DiscardSession(sessionID sharedtypes.SessionID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("DiscardSession")
	delete(f.sessions, sessionID)
}

func (f *FakeLedger) FinalizeSession(ctx context.Context, guildID sharedtypes.GuildID, sessionID sharedtypes.SessionID) (scoreservice.FinalizeOperationResult, error) {
	f.mu.Lock()
	f.record("FinalizeSession")
	fn := f.FinalizeSessionFunc
	var points []scoredomain.PlayerPoints
	if sp, ok := f.sessions[sessionID]; ok {
		points = sp.Snapshot()
		delete(f.sessions, sessionID)
	}
	f.finalized[sessionID] = points
	f.mu.Unlock()

	if fn != nil {
		return fn(ctx, guildID, sessionID)
	}
	winner, _ := scoredomain.Winner(points)
	return results.SuccessResult[scoreservice.FinalizeResult, scoreservice.Failure](scoreservice.FinalizeResult{
		GuildID: guildID,
		Winner:  winner,
	}), nil
}

// ------------------------
// Fake Settings
// ------------------------

type FakeSettings struct {
	Value guildservice.GameSettings
	Err   error
}

func (f *FakeSettings) Settings(ctx context.Context, guildID sharedtypes.GuildID) (guildservice.GameSettings, error) {
	if f.Err != nil {
		return guildservice.GameSettings{}, f.Err
	}
	s := f.Value
	s.GuildID = guildID
	return s, nil
}

// ------------------------
// Fake recipe source
// ------------------------

// fakeRecipes serves a fixed recipe list. Display names are the raw id plus
// an optional locale name, mirroring the catalog's ordering.
type fakeRecipes struct {
	recipes []catalogdomain.Recipe
	locale  map[catalogdomain.ItemID]string
}

func (f *fakeRecipes) DisplayNames(id catalogdomain.ItemID) []string {
	names := []string{string(id)}
	if n, ok := f.locale[id]; ok {
		names = append(names, n)
	}
	return names
}

func (f *fakeRecipes) PreferredName(id catalogdomain.ItemID) string {
	names := f.DisplayNames(id)
	return names[len(names)-1]
}

func (f *fakeRecipes) PickUnusedRecipe(excluding map[catalogdomain.RecipeID]struct{}) (catalogdomain.Recipe, error) {
	for _, r := range f.recipes {
		if _, used := excluding[r.ID]; !used {
			return r, nil
		}
	}
	return catalogdomain.Recipe{}, catalogdomain.ErrExhausted
}

// panicContent panics on the first guess and delegates afterwards.
type panicContent struct {
	RoundContent
	panicked bool
}

func (p *panicContent) Guess(author sharedtypes.Participant, text string) bool {
	if !p.panicked {
		p.panicked = true
		panic("index out of range")
	}
	return p.RoundContent.Guess(author, text)
}
