package testutils

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
)

// Publish marshals payload and publishes it to topic.
func Publish(t *testing.T, pub message.Publisher, topic string, payload any) {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to marshal payload: %v", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), body)
	middleware.SetCorrelationID(watermill.NewUUID(), msg)
	if err := pub.Publish(topic, msg); err != nil {
		t.Fatalf("failed to publish to %s: %v", topic, err)
	}
}

// Receive waits for the next message on ch that satisfies match, acking
// everything it reads, and decodes it into T.
func Receive[T any](t *testing.T, ch <-chan *message.Message, timeout time.Duration, match func(T) bool) T {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				t.Fatal("subscription closed")
			}
			msg.Ack()
			var payload T
			if err := json.Unmarshal(msg.Payload, &payload); err != nil {
				t.Fatalf("failed to decode %s: %v", msg.UUID, err)
			}
			if match == nil || match(payload) {
				return payload
			}
		case <-ctx.Done():
			var zero T
			t.Fatalf("timed out waiting for %T", zero)
			return zero
		}
	}
}
