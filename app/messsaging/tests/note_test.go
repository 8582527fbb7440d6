package tests

import (
	"context"
	"encoding/json"
	"errors"
	"github.com/ribgsilva/notebook-api/app/messsaging/consumers/v1/notes"
	"github.com/ribgsilva/notebook-api/app/setup"
	"github.com/ribgsilva/notebook-api/business/v1/note"
	pnote "github.com/ribgsilva/notebook-api/persistence/v1/note"
	"github.com/ribgsilva/notebook-api/persistence/v1/schema"
	"github.com/ribgsilva/notebook-api/platform/database"
	"github.com/ribgsilva/notebook-api/platform/events"
	"github.com/ribgsilva/notebook-api/platform/logger"
	"github.com/ribgsilva/notebook-api/sys"
	"gocloud.dev/pubsub"
	"gocloud.dev/pubsub/mempubsub"
	"testing"
	"time"
)

const (
	owner = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
	addr1 = "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"
)

type NoteTests struct {
	topic  *pubsub.Topic
	events *pubsub.Subscription
	repo   *note.Repository
}

func TestNote(t *testing.T) {
	log, err := logger.New("Notebook-Messaging-Tests")
	if err != nil {
		t.Fatal(err)
	}

	// =======================================================================================================
	// Setup configs
	sys.Configs.Database.Driver = "sqlite3"
	sys.Configs.Database.ConnectionURL = ":memory:"
	sys.Configs.Database.PingTimeout = 2 * time.Second
	sys.Configs.Database.OperationTimeout = 5 * time.Second
	sys.Configs.Messaging.ShutdownTimeout = 5 * time.Second

	// =======================================================================================================
	// Setup resources

	// logger
	sys.R.Log = log

	// sqlite, without cache
	db, err := database.Open(sys.Configs.Database.Driver, sys.Configs.Database.ConnectionURL, sys.Configs.Database.PingTimeout)
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		_ = db.Close()
	}()
	sys.R.Database = db

	if err := schema.Create(context.Background(), db, sys.Configs.Database.Driver); err != nil {
		t.Fatalf("sql.Exec: Error: %s\n", err)
	}
	defer schema.Drop(context.Background(), db)

	// events
	eventsTopic := mempubsub.NewTopic()
	defer func() {
		_ = eventsTopic.Shutdown(context.Background())
	}()
	eventsSub := mempubsub.NewSubscription(eventsTopic, time.Second)
	defer func() {
		_ = eventsSub.Shutdown(context.Background())
	}()

	sys.R.Events = eventsTopic

	store := pnote.NewSQL(log, db, nil, pnote.Config{OperationTimeout: sys.Configs.Database.OperationTimeout})
	repo := setup.Repository(store)

	// =======================================================================================================
	// Messaging configuration

	topic := mempubsub.NewTopic()
	defer func() {
		_ = topic.Shutdown(context.Background())
	}()
	subscription := mempubsub.NewSubscription(topic, 1*time.Second)

	defer func() {
		stdCtx, stdCancel := context.WithTimeout(context.Background(), sys.Configs.Messaging.ShutdownTimeout)
		defer stdCancel()

		_ = subscription.Shutdown(stdCtx)
	}()

	withCancel, cancelFunc := context.WithCancel(context.Background())
	consumed := make(chan error, 1)
	go func() {
		consumed <- notes.New(log, repo).Consume(withCancel, subscription, 2)
	}()
	defer func() {
		cancelFunc()
		if err := <-consumed; err != nil {
			t.Log("listener stopped with: ", err)
		}
	}()

	// =======================================================================================================
	// Run tests

	noteTests := NoteTests{topic: topic, events: eventsSub, repo: repo}

	noteTests.testCrud(t)
	noteTests.testHandleErrors(t, notes.New(log, repo))
}

func (nt *NoteTests) testCrud(t *testing.T) {
	id := nt.testCreateSuccess(t)
	nt.testShareSuccess(t, id)
	nt.testDeleteSuccess(t, id)
}

func (nt *NoteTests) send(t *testing.T, cmdType, caller string, data any) {
	t.Helper()

	raw, err := json.Marshal(data)
	if err != nil {
		t.Fatal("send: failed to marshal command data")
	}
	body, err := json.Marshal(notes.Command{Type: cmdType, Caller: caller, Data: raw})
	if err != nil {
		t.Fatal("send: failed to marshal command")
	}

	if err := nt.topic.Send(context.Background(), &pubsub.Message{Body: body}); err != nil {
		t.Fatal("send: failed to post message to topic: ", err)
	}
}

// eventually polls cond until it holds or the deadline passes
func eventually(t *testing.T, cond func() bool) bool {
	t.Helper()

	deadline := time.Now().Add(10 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(50 * time.Millisecond)
	}
	return false
}

func (nt *NoteTests) testCreateSuccess(t *testing.T) uint64 {
	nt.send(t, notes.CommandCreate, owner, note.NewNote{Content: "other text", IsPublic: false})

	var ids []uint64
	if !eventually(t, func() bool {
		var err error
		ids, err = nt.repo.UserNotes(context.Background(), owner)
		return err == nil && len(ids) == 1
	}) {
		t.Fatalf("Test testCreateSuccess: should have created one note: %v", ids)
	}

	content, err := nt.repo.Read(context.Background(), owner, ids[0])
	if err != nil {
		t.Fatal("Test testCreateSuccess: failed to read created note: ", err)
	}
	if content != "other text" {
		t.Fatalf("Test testCreateSuccess: should have received \"other text\" as content: %v", content)
	}
	return ids[0]
}

func (nt *NoteTests) testShareSuccess(t *testing.T, id uint64) {
	nt.send(t, notes.CommandShare, owner, notes.ShareData{Id: id, Sharing: note.Sharing{IsPublic: false, Addresses: []string{addr1}}})

	if !eventually(t, func() bool {
		shared, err := nt.repo.IsSharedWithUser(context.Background(), id, addr1)
		return err == nil && shared
	}) {
		t.Fatal("Test testShareSuccess: note should be shared with addr1")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	received := map[string]int{}
	for i := 0; i < 2; i++ {
		m, err := nt.events.Receive(ctx)
		if err != nil {
			t.Fatal("Test testShareSuccess: should have received an event: ", err)
		}
		m.Ack()
		received[m.Metadata[events.TypeKey]]++
	}
	if received[note.EventNoteUpdated] != 1 || received[note.EventNoteShared] != 1 {
		t.Fatalf("Test testShareSuccess: should have received one update and one share event: %v", received)
	}
}

func (nt *NoteTests) testDeleteSuccess(t *testing.T, id uint64) {
	// a stranger can't delete, the message is acked and the note survives
	nt.send(t, notes.CommandDelete, addr1, notes.DeleteData{Id: id})
	nt.send(t, notes.CommandDelete, owner, notes.DeleteData{Id: id})

	if !eventually(t, func() bool {
		_, err := nt.repo.Read(context.Background(), owner, id)
		return errors.Is(err, note.ErrNotFound)
	}) {
		t.Fatal("Test testDeleteSuccess: note should be gone")
	}
}

func (nt *NoteTests) testHandleErrors(t *testing.T, c *notes.Consumer) {
	ctx := context.Background()

	tests := []struct {
		name string
		body string
		want error
	}{
		{name: "not json", body: "{"},
		{name: "unknown type", body: `{"type":"rename","caller":"` + owner + `","data":{}}`},
		{name: "missing caller", body: `{"type":"create","data":{"content":"x"}}`},
		{name: "bad address", body: `{"type":"share","caller":"` + owner + `","data":{"id":1,"addresses":["a b"]}}`},
		{name: "missing note", body: `{"type":"delete","caller":"` + owner + `","data":{"id":9999}}`, want: note.ErrNotFound},
	}

	for _, tt := range tests {
		err := c.Handle(ctx, []byte(tt.body))
		if err == nil {
			t.Fatalf("Test testHandleErrors %s: should fail", tt.name)
		}
		if tt.want != nil && !errors.Is(err, tt.want) {
			t.Fatalf("Test testHandleErrors %s: should wrap %v, got %v", tt.name, tt.want, err)
		}
	}
}
