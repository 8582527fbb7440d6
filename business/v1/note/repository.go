package note

import (
	"context"
	"errors"
	"fmt"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/ribgsilva/notebook-api/persistence/v1/note"
	"go.uber.org/zap"
	"sync"
)

// Store is the persistence the repository works on
type Store interface {
	Insert(ctx context.Context, newN note.NewNote) (uint64, error)
	Find(ctx context.Context, id uint64) (note.Note, error)
	UpdateSharing(ctx context.Context, id uint64, isPublic bool, addresses []string) error
	Delete(ctx context.Context, id uint64, pruneOwnerIndex bool) error
	OwnerNotes(ctx context.Context, owner string) ([]uint64, error)
}

// Emitter receives the events produced by successful operations
type Emitter interface {
	Emit(ctx context.Context, e Event) error
}

// Repository guards every note operation. Operations run one at a time, each one checks
// everything it needs before touching the store.
type Repository struct {
	mu      sync.Mutex
	log     *zap.SugaredLogger
	store   Store
	emitter Emitter
	opts    Options
}

func New(log *zap.SugaredLogger, store Store, emitter Emitter, opts Options) *Repository {
	return &Repository{
		log:     log,
		store:   store,
		emitter: emitter,
		opts:    opts,
	}
}

// begin serializes the operation and opens a New Relic segment when the context carries a transaction
func (r *Repository) begin(ctx context.Context, name string) func() {
	r.mu.Lock()
	seg := newrelic.FromContext(ctx).StartSegment("note." + name)
	return func() {
		seg.End()
		r.mu.Unlock()
	}
}

// live loads a note, ErrNotFound when it never existed or was deleted
func (r *Repository) live(ctx context.Context, id uint64) (note.Note, error) {
	n, err := r.store.Find(ctx, id)
	if err != nil {
		return note.Note{}, fmt.Errorf("find note %d: %w", id, err)
	}
	if n.Id == 0 {
		return note.Note{}, ErrNotFound
	}
	return n, nil
}

// owned loads a note the caller must own, existence is checked first
func (r *Repository) owned(ctx context.Context, caller string, id uint64) (note.Note, error) {
	n, err := r.live(ctx, id)
	if err != nil {
		return note.Note{}, err
	}
	if n.Owner != caller {
		return note.Note{}, ErrForbidden
	}
	return n, nil
}

func sharedWith(n note.Note, identity string) bool {
	for _, s := range n.SharedWith {
		if s == identity {
			return true
		}
	}
	return false
}

// stored maps a note removed under a running mutation to ErrNotFound
func stored(err error) error {
	if errors.Is(err, note.ErrNoNote) {
		return ErrNotFound
	}
	return err
}
