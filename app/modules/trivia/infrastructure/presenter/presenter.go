// Package triviapresenter shows game sessions in Discord by publishing
// gateway commands, and collects signup reactions.
package triviapresenter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	triviaservice "github.com/Black-And-White-Club/trivia-bot/app/modules/trivia/application"
	discordevents "github.com/Black-And-White-Club/trivia-bot/internal/events/discord"
	triviaevents "github.com/Black-And-White-Club/trivia-bot/internal/events/trivia"
	"github.com/Black-And-White-Club/trivia-bot/internal/handlerwrapper"
	"github.com/Black-And-White-Club/trivia-bot/internal/sharedtypes"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// SignupEmoji is the reaction players add to the signup message to join.
const SignupEmoji = "✅"

var ErrInvalidHandle = errors.New("invalid message handle")

// Presenter implements triviaservice.Presenter over the event bus.
type Presenter struct {
	publisher message.Publisher
	logger    *slog.Logger
	edits     *channelLimiter

	mu      sync.Mutex
	signups map[triviaservice.MessageHandle][]sharedtypes.Participant
}

var _ triviaservice.Presenter = (*Presenter)(nil)

// NewPresenter creates a Presenter. Message edits are limited to
// editsPerSecond per channel; zero disables the limit.
func NewPresenter(publisher message.Publisher, logger *slog.Logger, editsPerSecond float64) *Presenter {
	limit := rate.Inf
	if editsPerSecond > 0 {
		limit = rate.Limit(editsPerSecond)
	}
	return &Presenter{
		publisher: publisher,
		logger:    logger,
		edits:     newChannelLimiter(limit, 1),
		signups:   make(map[triviaservice.MessageHandle][]sharedtypes.Participant),
	}
}

// Handles embed the channel so edits need no lookup.
func newHandle(channelID sharedtypes.ChannelID) triviaservice.MessageHandle {
	return triviaservice.MessageHandle(channelID.String() + "/" + uuid.NewString())
}

func channelOf(handle triviaservice.MessageHandle) (sharedtypes.ChannelID, error) {
	channel, _, ok := strings.Cut(string(handle), "/")
	if !ok || channel == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidHandle, handle)
	}
	return sharedtypes.ChannelID(channel), nil
}

func (p *Presenter) publish(ctx context.Context, topic string, payload any) error {
	msg, err := handlerwrapper.NewMessage(handlerwrapper.Result{Topic: topic, Payload: payload}, "")
	if err != nil {
		return err
	}
	msg.SetContext(ctx)
	if err := p.publisher.Publish(topic, msg); err != nil {
		return fmt.Errorf("publish %s: %w", topic, err)
	}
	return nil
}

func (p *Presenter) send(ctx context.Context, channelID sharedtypes.ChannelID, msg triviaservice.Message, reaction string) (triviaservice.MessageHandle, error) {
	handle := newHandle(channelID)
	err := p.publish(ctx, discordevents.MessageSendV1, discordevents.MessageSendPayloadV1{
		Handle:    string(handle),
		ChannelID: channelID,
		Title:     msg.Title,
		Body:      msg.Body,
		Reaction:  reaction,
	})
	if err != nil {
		return "", err
	}
	return handle, nil
}

// AnnounceSignupOpen posts the signup message and starts collecting its
// reactions.
func (p *Presenter) AnnounceSignupOpen(ctx context.Context, channelID sharedtypes.ChannelID, msg triviaservice.Message) (triviaservice.MessageHandle, error) {
	handle, err := p.send(ctx, channelID, msg, SignupEmoji)
	if err != nil {
		return "", err
	}
	p.mu.Lock()
	p.signups[handle] = []sharedtypes.Participant{}
	p.mu.Unlock()
	return handle, nil
}

// RecordReaction applies a reaction event to the signup roster it belongs to.
// It reports false for reactions that do not count.
func (p *Presenter) RecordReaction(ctx context.Context, ev triviaevents.SignupReactionPayloadV1) bool {
	if ev.Emoji != SignupEmoji || ev.User.Bot || ev.User.ID == "" {
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	handle := triviaservice.MessageHandle(ev.Handle)
	roster, ok := p.signups[handle]
	if !ok {
		return false
	}
	i := slices.IndexFunc(roster, func(q sharedtypes.Participant) bool { return q.ID == ev.User.ID })
	switch {
	case ev.Removed && i >= 0:
		p.signups[handle] = slices.Delete(roster, i, i+1)
	case !ev.Removed && i < 0:
		p.signups[handle] = append(roster, ev.User)
	default:
		return false
	}
	p.logger.DebugContext(ctx, "Signup roster changed",
		slog.String("handle", ev.Handle),
		slog.String("player_id", ev.User.ID.String()),
		slog.Bool("removed", ev.Removed),
	)
	return true
}

// ReadSignupRoster returns everyone who reacted, in reaction order, and stops
// tracking the message.
func (p *Presenter) ReadSignupRoster(ctx context.Context, handle triviaservice.MessageHandle) ([]sharedtypes.Participant, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	roster, ok := p.signups[handle]
	if !ok {
		return nil, fmt.Errorf("%w: no signup for %q", ErrInvalidHandle, handle)
	}
	delete(p.signups, handle)
	return roster, nil
}

func (p *Presenter) SendRoundPrompt(ctx context.Context, channelID sharedtypes.ChannelID, msg triviaservice.Message) (triviaservice.MessageHandle, error) {
	return p.send(ctx, channelID, msg, "")
}

// UpdateMessage edits a message sent earlier, waiting for the channel's edit
// budget.
func (p *Presenter) UpdateMessage(ctx context.Context, handle triviaservice.MessageHandle, msg triviaservice.Message) error {
	channelID, err := channelOf(handle)
	if err != nil {
		return err
	}
	if err := p.edits.get(channelID).Wait(ctx); err != nil {
		return fmt.Errorf("edit throttle: %w", err)
	}
	return p.publish(ctx, discordevents.MessageEditV1, discordevents.MessageEditPayloadV1{
		Handle:    string(handle),
		ChannelID: channelID,
		Title:     msg.Title,
		Body:      msg.Body,
	})
}

// AnnounceResults posts the final leaderboard. It ends the channel's edit
// budget.
func (p *Presenter) AnnounceResults(ctx context.Context, channelID sharedtypes.ChannelID, msg triviaservice.Message) error {
	defer p.edits.forget(channelID)
	_, err := p.send(ctx, channelID, msg, "")
	return err
}

func (p *Presenter) React(ctx context.Context, channelID sharedtypes.ChannelID, messageID, emoji string) error {
	return p.publish(ctx, discordevents.ReactionAddV1, discordevents.ReactionAddPayloadV1{
		ChannelID: channelID,
		MessageID: messageID,
		Emoji:     emoji,
	})
}
