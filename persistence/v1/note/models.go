package note

import (
	"context"
	"database/sql"
	"errors"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"time"
)

const noteKey = "notes.%d"

// ErrNoNote is returned by mutations when the note is gone at the time they run
var ErrNoNote = errors.New("note not found")

type Note struct {
	Id         uint64
	Owner      string
	Content    string
	IsPublic   bool
	SharedWith []string
	UpdatedAt  time.Time
	CreatedAt  time.Time
}

type NewNote struct {
	Owner    string
	Content  string
	IsPublic bool
}

// Config holds the timeouts used by the SQL store
type Config struct {
	OperationTimeout      time.Duration
	CacheOperationTimeout time.Duration
	CacheTTL              time.Duration
}

// SQL persists notes in a relational database, reads go through a redis cache when one is given
type SQL struct {
	log   *zap.SugaredLogger
	db    *sql.DB
	cache *redis.Client
	cfg   Config
}

func NewSQL(log *zap.SugaredLogger, db *sql.DB, cache *redis.Client, cfg Config) *SQL {
	return &SQL{
		log:   log,
		db:    db,
		cache: cache,
		cfg:   cfg,
	}
}

// inTx runs f in a transaction, committing only when f succeeds
func (s *SQL) inTx(ctx context.Context, f func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := f(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// mutate runs f in a transaction and drops the cached copy of the note both before the commit and
// after it. A reader in another process may cache the old row while the transaction is open,
// the second eviction removes it.
func (s *SQL) mutate(ctx context.Context, id uint64, f func(ctx context.Context, tx *sql.Tx) error) error {
	dbCtx, dbCancel := context.WithTimeout(ctx, s.cfg.OperationTimeout)
	defer dbCancel()

	err := s.inTx(dbCtx, func(tx *sql.Tx) error {
		if err := f(dbCtx, tx); err != nil {
			return err
		}
		return s.evict(ctx, id)
	})
	if err != nil {
		return err
	}

	if err := s.evict(ctx, id); err != nil {
		s.log.Errorw("cache", "status", "evict after commit failed", "note", id, "ERROR", err)
	}
	return nil
}
