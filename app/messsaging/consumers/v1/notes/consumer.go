package notes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/ribgsilva/notebook-api/business/v1/note"
	"github.com/ribgsilva/notebook-api/platform/web/mid"
	"go.uber.org/zap"
	"gocloud.dev/pubsub"
)

// Command types accepted on the subscription
const (
	CommandCreate = "create"
	CommandShare  = "share"
	CommandDelete = "delete"
)

// Command is a note operation requested by caller, Data depends on Type
type Command struct {
	Type   string          `json:"type"`
	Caller string          `json:"caller"`
	Data   json.RawMessage `json:"data"`
}

type ShareData struct {
	Id uint64 `json:"id"`
	note.Sharing
}

type DeleteData struct {
	Id uint64 `json:"id"`
}

type Consumer struct {
	log  *zap.SugaredLogger
	repo *note.Repository
}

func New(log *zap.SugaredLogger, repo *note.Repository) *Consumer {
	return &Consumer{log: log, repo: repo}
}

// Consume receives until ctx is done, handling at most maxWorkers messages at once
func (c *Consumer) Consume(ctx context.Context, sub *pubsub.Subscription, maxWorkers int) error {
	workers := make(chan struct{}, maxWorkers)

	var err error
	for {
		var message *pubsub.Message
		message, err = sub.Receive(ctx)
		if err != nil {
			break
		}

		workers <- struct{}{}
		go func(m *pubsub.Message) {
			defer func() { <-workers }()
			defer m.Ack()

			c.log.Infow("message received", "size", len(m.Body))
			if err := c.Handle(ctx, m.Body); err != nil {
				c.log.Errorw("message", "status", "failed", "ERROR", err)
			}
		}(message)
	}

	// wait for the running workers
	for w := 0; w < maxWorkers; w++ {
		workers <- struct{}{}
	}

	if !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}

// Handle applies a single command message to the repository
func (c *Consumer) Handle(ctx context.Context, body []byte) error {
	var cmd Command
	if err := json.Unmarshal(body, &cmd); err != nil {
		return fmt.Errorf("failed to parse body: %w", err)
	}
	if !mid.ValidIdentity(cmd.Caller) {
		return fmt.Errorf("invalid caller %q on %s command", cmd.Caller, cmd.Type)
	}

	switch cmd.Type {
	case CommandCreate:
		var newN note.NewNote
		if err := json.Unmarshal(cmd.Data, &newN); err != nil {
			return fmt.Errorf("failed to parse create data: %w", err)
		}
		id, err := c.repo.Create(ctx, cmd.Caller, newN)
		if err != nil {
			return fmt.Errorf("failed to create note: %w", err)
		}
		c.log.Infow("command", "type", cmd.Type, "caller", cmd.Caller, "note", id)
	case CommandShare:
		var s ShareData
		if err := json.Unmarshal(cmd.Data, &s); err != nil {
			return fmt.Errorf("failed to parse share data: %w", err)
		}
		for _, address := range s.Addresses {
			if !mid.ValidIdentity(address) {
				return fmt.Errorf("invalid address %q on share command", address)
			}
		}
		if err := c.repo.UpdateSharing(ctx, cmd.Caller, s.Id, s.Sharing); err != nil {
			return fmt.Errorf("failed to update sharing of note %d: %w", s.Id, err)
		}
	case CommandDelete:
		var d DeleteData
		if err := json.Unmarshal(cmd.Data, &d); err != nil {
			return fmt.Errorf("failed to parse delete data: %w", err)
		}
		if err := c.repo.Delete(ctx, cmd.Caller, d.Id); err != nil {
			return fmt.Errorf("failed to delete note %d: %w", d.Id, err)
		}
	default:
		return fmt.Errorf("unknown command type: %s", cmd.Type)
	}
	return nil
}
