// Package events publishes note events on a gocloud pubsub topic
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/ribgsilva/notebook-api/business/v1/note"
	"gocloud.dev/pubsub"
)

// TypeKey is the message metadata key holding the event type, subscribers can filter on it
const TypeKey = "type"

type Topic struct {
	topic *pubsub.Topic
}

func NewTopic(topic *pubsub.Topic) *Topic {
	return &Topic{topic: topic}
}

// Emit sends the event as a json message
func (t *Topic) Emit(ctx context.Context, e note.Event) error {
	body, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", e.Type, err)
	}

	if err := t.topic.Send(ctx, &pubsub.Message{
		Body:     body,
		Metadata: map[string]string{TypeKey: e.Type},
	}); err != nil {
		return fmt.Errorf("failed to send %s event: %w", e.Type, err)
	}
	return nil
}
