package eventbus

import (
	"context"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// MemoryBus is an in-process bus with the same routing behavior as EventBus.
// It backs tests and local runs without NATS.
type MemoryBus struct {
	*RoutingPublisher
	channel *gochannel.GoChannel
}

// NewMemoryBus creates a MemoryBus.
func NewMemoryBus(logger *slog.Logger) *MemoryBus {
	ch := gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer: 256,
		Persistent:          true,
	}, watermill.NewSlogLogger(logger))
	return &MemoryBus{
		RoutingPublisher: NewRoutingPublisher(ch),
		channel:          ch,
	}
}

// Subscribe implements message.Subscriber.
func (b *MemoryBus) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	return b.channel.Subscribe(ctx, topic)
}

// Close implements message.Publisher and message.Subscriber.
func (b *MemoryBus) Close() error { return b.channel.Close() }
