package triviarouter

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/Black-And-White-Club/trivia-bot/app/eventbus"
	triviaevents "github.com/Black-And-White-Club/trivia-bot/internal/events/trivia"
	"github.com/Black-And-White-Club/trivia-bot/internal/handlerwrapper"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
)

type stubHandlers struct {
	messages chan triviaevents.MessageReceivedPayloadV1
}

func (s *stubHandlers) HandleSessionStartRequested(ctx context.Context, p *triviaevents.SessionStartRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	return []handlerwrapper.Result{{
		Topic:   triviaevents.SessionStartedV1,
		Payload: triviaevents.SessionStartedPayloadV1{GuildID: p.GuildID, ChannelID: p.ChannelID, SessionID: "s1"},
	}}, nil
}

func (s *stubHandlers) HandleForceStartRequested(ctx context.Context, p *triviaevents.ForceStartRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	return nil, nil
}

func (s *stubHandlers) HandleMessageReceived(ctx context.Context, p *triviaevents.MessageReceivedPayloadV1) ([]handlerwrapper.Result, error) {
	s.messages <- *p
	return nil, nil
}

func (s *stubHandlers) HandleSignupReaction(ctx context.Context, p *triviaevents.SignupReactionPayloadV1) ([]handlerwrapper.Result, error) {
	return nil, nil
}

func publish(t *testing.T, bus message.Publisher, topic string, payload any) {
	t.Helper()
	m, err := handlerwrapper.NewMessage(handlerwrapper.Result{Topic: topic, Payload: payload}, "")
	require.NoError(t, err)
	require.NoError(t, bus.Publish(topic, m))
}

func TestTriviaRouter_RoutesReplies(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	bus := eventbus.NewMemoryBus(logger)
	t.Cleanup(func() { _ = bus.Close() })

	router, err := message.NewRouter(message.RouterConfig{CloseTimeout: time.Second}, watermill.NopLogger{})
	require.NoError(t, err)

	stub := &stubHandlers{messages: make(chan triviaevents.MessageReceivedPayloadV1, 1)}
	tr := NewTriviaRouter(logger, router, bus, bus, noop.NewTracerProvider().Tracer("test"))
	require.NoError(t, tr.RegisterHandlers(context.Background(), stub))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	replies, err := bus.Subscribe(ctx, triviaevents.SessionStartedV1)
	require.NoError(t, err)

	go func() { _ = router.Run(ctx) }()
	<-router.Running()

	publish(t, bus, triviaevents.SessionStartRequestedV1, triviaevents.SessionStartRequestedPayloadV1{GuildID: "g1", ChannelID: "c1"})
	select {
	case m := <-replies:
		var p triviaevents.SessionStartedPayloadV1
		require.NoError(t, json.Unmarshal(m.Payload, &p))
		assert.Equal(t, triviaevents.SessionStartedPayloadV1{GuildID: "g1", ChannelID: "c1", SessionID: "s1"}, p)
		m.Ack()
	case <-time.After(3 * time.Second):
		t.Fatal("no reply published")
	}

	publish(t, bus, triviaevents.MessageReceivedV1, triviaevents.MessageReceivedPayloadV1{ChannelID: "c1", Content: "stick"})
	select {
	case p := <-stub.messages:
		assert.Equal(t, "stick", p.Content)
	case <-time.After(3 * time.Second):
		t.Fatal("message not handled")
	}
}
