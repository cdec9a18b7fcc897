package eventbus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/nats-io/nats.go/jetstream"
)

// StreamSpec is one JetStream stream and the subjects it captures.
type StreamSpec struct {
	Name     string
	Subjects []string
}

// Streams lists every stream the service reads from or writes to.
var Streams = []StreamSpec{
	{Name: "trivia", Subjects: []string{"trivia.>"}},
	{Name: "discord", Subjects: []string{"discord.>"}},
}

// EnsureStreams creates missing streams and adds missing subjects to existing
// ones. It is safe to call on every startup.
func EnsureStreams(ctx context.Context, js jetstream.JetStream, logger *slog.Logger, specs []StreamSpec) error {
	for _, spec := range specs {
		stream, err := js.Stream(ctx, spec.Name)
		if errors.Is(err, jetstream.ErrStreamNotFound) {
			if _, err := js.CreateStream(ctx, jetstream.StreamConfig{
				Name:     spec.Name,
				Subjects: spec.Subjects,
			}); err != nil {
				logger.ErrorContext(ctx, "Failed to create JetStream stream",
					slog.String("stream", spec.Name),
					slog.Any("error", err),
				)
				return fmt.Errorf("create stream %s: %w", spec.Name, err)
			}
			logger.InfoContext(ctx, "Created JetStream stream", slog.String("stream", spec.Name))
			continue
		}
		if err != nil {
			return fmt.Errorf("check stream %s: %w", spec.Name, err)
		}

		info, err := stream.Info(ctx)
		if err != nil {
			return fmt.Errorf("stream info %s: %w", spec.Name, err)
		}
		cfg := info.Config
		changed := false
		for _, subject := range spec.Subjects {
			if !slices.Contains(cfg.Subjects, subject) {
				cfg.Subjects = append(cfg.Subjects, subject)
				changed = true
			}
		}
		if !changed {
			continue
		}
		if _, err := js.UpdateStream(ctx, cfg); err != nil {
			return fmt.Errorf("update stream %s: %w", spec.Name, err)
		}
		logger.InfoContext(ctx, "Stream updated with new subjects", slog.String("stream", spec.Name))
	}
	return nil
}
