package eventbus

import (
	"fmt"

	"github.com/Black-And-White-Club/trivia-bot/internal/handlerwrapper"
	"github.com/ThreeDotsLabs/watermill/message"
)

// RoutingPublisher publishes messages given without a topic to the topic in
// their metadata. Handlers registered with an empty publish topic rely on it.
type RoutingPublisher struct {
	next message.Publisher
}

// NewRoutingPublisher wraps next.
func NewRoutingPublisher(next message.Publisher) *RoutingPublisher {
	return &RoutingPublisher{next: next}
}

// Publish implements message.Publisher. Messages keep their relative order
// per topic.
func (p *RoutingPublisher) Publish(topic string, messages ...*message.Message) error {
	if topic != "" {
		return p.next.Publish(topic, messages...)
	}
	for _, msg := range messages {
		t := msg.Metadata.Get(handlerwrapper.TopicMetadataKey)
		if t == "" {
			return fmt.Errorf("message %s has no topic", msg.UUID)
		}
		if err := p.next.Publish(t, msg); err != nil {
			return fmt.Errorf("publish to %s: %w", t, err)
		}
	}
	return nil
}

func (p *RoutingPublisher) Close() error { return p.next.Close() }
