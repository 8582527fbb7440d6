package note_test

import (
	"context"
	"database/sql"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	_ "github.com/mattn/go-sqlite3"
	"github.com/ribgsilva/notebook-api/persistence/v1/note"
	"github.com/ribgsilva/notebook-api/persistence/v1/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"path/filepath"
	"testing"
	"time"
)

type store interface {
	Insert(ctx context.Context, newN note.NewNote) (uint64, error)
	Find(ctx context.Context, id uint64) (note.Note, error)
	UpdateSharing(ctx context.Context, id uint64, isPublic bool, addresses []string) error
	Delete(ctx context.Context, id uint64, pruneOwnerIndex bool) error
	OwnerNotes(ctx context.Context, owner string) ([]uint64, error)
}

func newSQL(t *testing.T) (*note.SQL, *miniredis.Miniredis) {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, schema.Create(context.Background(), db, "sqlite3"))

	s := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return note.NewSQL(zap.NewNop().Sugar(), db, rdb, note.Config{
		OperationTimeout:      5 * time.Second,
		CacheOperationTimeout: time.Second,
		CacheTTL:              time.Hour,
	}), s
}

func TestStores(t *testing.T) {
	stores := map[string]func(t *testing.T) store{
		"sql": func(t *testing.T) store {
			s, _ := newSQL(t)
			return s
		},
		"memory": func(t *testing.T) store {
			return note.NewMemory()
		},
	}

	for name, build := range stores {
		t.Run(name, func(t *testing.T) {
			t.Run("insert and find", func(t *testing.T) { testInsertFind(t, build(t)) })
			t.Run("sharing is additive", func(t *testing.T) { testSharing(t, build(t)) })
			t.Run("delete keeps owner index", func(t *testing.T) { testDelete(t, build(t), false) })
			t.Run("delete prunes owner index", func(t *testing.T) { testDelete(t, build(t), true) })
			t.Run("ids are never reused", func(t *testing.T) { testNoReuse(t, build(t)) })
		})
	}
}

func testInsertFind(t *testing.T, s store) {
	ctx := context.Background()

	id, err := s.Insert(ctx, note.NewNote{Owner: "alice", Content: "Note 1", IsPublic: true})
	require.NoError(t, err)
	assert.NotZero(t, id)

	found, err := s.Find(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, found.Id)
	assert.Equal(t, "alice", found.Owner)
	assert.Equal(t, "Note 1", found.Content)
	assert.True(t, found.IsPublic)
	assert.Empty(t, found.SharedWith)

	missing, err := s.Find(ctx, 9999)
	require.NoError(t, err)
	assert.Zero(t, missing.Id)

	ids, err := s.OwnerNotes(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []uint64{id}, ids)

	ids, err = s.OwnerNotes(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func testSharing(t *testing.T, s store) {
	ctx := context.Background()

	id, err := s.Insert(ctx, note.NewNote{Owner: "alice", Content: "Shared Note"})
	require.NoError(t, err)

	require.NoError(t, s.UpdateSharing(ctx, id, false, []string{"bob", "carol", "bob"}))
	require.NoError(t, s.UpdateSharing(ctx, id, true, []string{"dave", "carol"}))

	found, err := s.Find(ctx, id)
	require.NoError(t, err)
	assert.True(t, found.IsPublic)
	assert.Equal(t, []string{"bob", "carol", "dave"}, found.SharedWith)

	require.NoError(t, s.UpdateSharing(ctx, id, false, nil))
	found, err = s.Find(ctx, id)
	require.NoError(t, err)
	assert.False(t, found.IsPublic)
	assert.Equal(t, []string{"bob", "carol", "dave"}, found.SharedWith)
}

func testDelete(t *testing.T, s store, prune bool) {
	ctx := context.Background()

	first, err := s.Insert(ctx, note.NewNote{Owner: "alice", Content: "Note to Delete"})
	require.NoError(t, err)
	second, err := s.Insert(ctx, note.NewNote{Owner: "alice", Content: "Note to Keep"})
	require.NoError(t, err)
	require.NoError(t, s.UpdateSharing(ctx, first, false, []string{"bob"}))

	// warm the cache so the delete has to evict it
	_, err = s.Find(ctx, first)
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, first, prune))

	found, err := s.Find(ctx, first)
	require.NoError(t, err)
	assert.Zero(t, found.Id)

	assert.ErrorIs(t, s.Delete(ctx, first, prune), note.ErrNoNote)
	assert.ErrorIs(t, s.UpdateSharing(ctx, first, true, []string{"carol"}), note.ErrNoNote)

	ids, err := s.OwnerNotes(ctx, "alice")
	require.NoError(t, err)
	if prune {
		assert.Equal(t, []uint64{second}, ids)
	} else {
		assert.Equal(t, []uint64{first, second}, ids)
	}
}

func testNoReuse(t *testing.T, s store) {
	ctx := context.Background()

	first, err := s.Insert(ctx, note.NewNote{Owner: "alice", Content: "a"})
	require.NoError(t, err)
	require.NoError(t, s.Delete(ctx, first, false))

	second, err := s.Insert(ctx, note.NewNote{Owner: "alice", Content: "b"})
	require.NoError(t, err)
	assert.Greater(t, second, first)
}

func TestSQLCache(t *testing.T) {
	s, mr := newSQL(t)
	ctx := context.Background()

	id, err := s.Insert(ctx, note.NewNote{Owner: "alice", Content: "cached", IsPublic: true})
	require.NoError(t, err)

	_, err = s.Find(ctx, id)
	require.NoError(t, err)
	assert.True(t, mr.Exists("notes.1"))

	require.NoError(t, s.UpdateSharing(ctx, id, false, []string{"bob"}))
	assert.False(t, mr.Exists("notes.1"))

	found, err := s.Find(ctx, id)
	require.NoError(t, err)
	assert.False(t, found.IsPublic)
	assert.Equal(t, []string{"bob"}, found.SharedWith)
	assert.True(t, mr.Exists("notes.1"))

	require.NoError(t, s.Delete(ctx, id, false))
	assert.False(t, mr.Exists("notes.1"))
}

func TestSQLCacheFailureRollsBack(t *testing.T) {
	s, mr := newSQL(t)
	ctx := context.Background()

	id, err := s.Insert(ctx, note.NewNote{Owner: "alice", Content: "kept"})
	require.NoError(t, err)

	mr.Close()

	assert.Error(t, s.Delete(ctx, id, false))

	found, err := s.Find(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, found.Id)
}

// readOnEvict reads the note through another store every time the client evicts it,
// the way an api process may while a worker process has its transaction open.
type readOnEvict struct {
	t     *testing.T
	other *note.SQL
	id    uint64
}

func (h readOnEvict) BeforeProcess(ctx context.Context, _ redis.Cmder) (context.Context, error) {
	return ctx, nil
}

func (h readOnEvict) AfterProcess(ctx context.Context, cmd redis.Cmder) error {
	if cmd.Name() == "del" {
		_, err := h.other.Find(ctx, h.id)
		require.NoError(h.t, err)
	}
	return nil
}

func (h readOnEvict) BeforeProcessPipeline(ctx context.Context, _ []redis.Cmder) (context.Context, error) {
	return ctx, nil
}

func (h readOnEvict) AfterProcessPipeline(context.Context, []redis.Cmder) error {
	return nil
}

// twoProcesses returns an api and a worker store sharing one database file and one redis,
// the worker's evictions trigger a read of note 1 through the api store.
func twoProcesses(t *testing.T) (api, worker *note.SQL, db *sql.DB, mr *miniredis.Miniredis) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "notes.db")
	open := func() *sql.DB {
		db, err := sql.Open("sqlite3", path)
		require.NoError(t, err)
		db.SetMaxOpenConns(1)
		t.Cleanup(func() { _ = db.Close() })
		return db
	}

	cfg := note.Config{
		OperationTimeout:      5 * time.Second,
		CacheOperationTimeout: time.Second,
		CacheTTL:              time.Hour,
	}
	mr = miniredis.RunT(t)

	apiDB := open()
	require.NoError(t, schema.Create(context.Background(), apiDB, "sqlite3"))
	apiCache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = apiCache.Close() })
	api = note.NewSQL(zap.NewNop().Sugar(), apiDB, apiCache, cfg)

	workerCache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = workerCache.Close() })
	workerCache.AddHook(readOnEvict{t: t, other: api, id: 1})
	worker = note.NewSQL(zap.NewNop().Sugar(), open(), workerCache, cfg)

	return api, worker, apiDB, mr
}

func TestSQLDeleteSeenByOtherProcess(t *testing.T) {
	api, worker, _, _ := twoProcesses(t)
	ctx := context.Background()

	id, err := api.Insert(ctx, note.NewNote{Owner: "alice", Content: "secret", IsPublic: true})
	require.NoError(t, err)
	require.Equal(t, uint64(1), id)

	require.NoError(t, worker.Delete(ctx, id, false))

	found, err := api.Find(ctx, id)
	require.NoError(t, err)
	assert.Zero(t, found.Id, "deleted note served from cache")
}

func TestSQLVisibilitySeenByOtherProcess(t *testing.T) {
	api, worker, _, _ := twoProcesses(t)
	ctx := context.Background()

	id, err := api.Insert(ctx, note.NewNote{Owner: "alice", Content: "was public", IsPublic: true})
	require.NoError(t, err)
	_, err = api.Find(ctx, id)
	require.NoError(t, err)

	require.NoError(t, worker.UpdateSharing(ctx, id, false, nil))

	found, err := api.Find(ctx, id)
	require.NoError(t, err)
	assert.False(t, found.IsPublic)
}

func TestSQLSharingAfterOtherProcessDeleted(t *testing.T) {
	api, worker, db, _ := twoProcesses(t)
	ctx := context.Background()

	id, err := api.Insert(ctx, note.NewNote{Owner: "alice", Content: "gone"})
	require.NoError(t, err)

	// api passed its checks before the worker deleted the note
	found, err := api.Find(ctx, id)
	require.NoError(t, err)
	require.Equal(t, id, found.Id)
	require.NoError(t, worker.Delete(ctx, id, false))

	assert.ErrorIs(t, api.UpdateSharing(ctx, id, true, []string{"bob"}), note.ErrNoNote)

	var shares int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM note_shares WHERE note_id = ?", id).Scan(&shares))
	assert.Zero(t, shares)
}
