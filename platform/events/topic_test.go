package events

import (
	"context"
	"encoding/json"
	"github.com/ribgsilva/notebook-api/business/v1/note"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/pubsub/mempubsub"
	"testing"
	"time"
)

func TestEmit(t *testing.T) {
	ctx := context.Background()

	topic := mempubsub.NewTopic()
	defer func() { _ = topic.Shutdown(ctx) }()
	sub := mempubsub.NewSubscription(topic, time.Second)
	defer func() { _ = sub.Shutdown(ctx) }()

	require.NoError(t, NewTopic(topic).Emit(ctx, note.Event{
		Type: note.EventNoteShared,
		Data: note.Shared{Id: 3, SharedWith: "0xabc"},
	}))

	rcvCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	msg, err := sub.Receive(rcvCtx)
	require.NoError(t, err)
	msg.Ack()

	assert.Equal(t, note.EventNoteShared, msg.Metadata[TypeKey])

	var got struct {
		Type string      `json:"type"`
		Data note.Shared `json:"data"`
	}
	require.NoError(t, json.Unmarshal(msg.Body, &got))
	assert.Equal(t, note.EventNoteShared, got.Type)
	assert.Equal(t, note.Shared{Id: 3, SharedWith: "0xabc"}, got.Data)
}
