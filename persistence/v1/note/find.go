package note

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/go-redis/redis/v8"
)

// Find returns the note with the given id, a zero Id means it does not exist
func (s *SQL) Find(ctx context.Context, id uint64) (Note, error) {
	key := fmt.Sprintf(noteKey, id)

	if n, ok := s.fromCache(ctx, key); ok {
		return n, nil
	}

	dbCtx, dbCancel := context.WithTimeout(ctx, s.cfg.OperationTimeout)
	defer dbCancel()

	var note Note
	row := s.db.QueryRowContext(dbCtx, "SELECT id, owner, content, is_public, updated_at, created_at FROM notes WHERE id = ?", id)
	err := row.Scan(&note.Id, &note.Owner, &note.Content, &note.IsPublic, &note.UpdatedAt, &note.CreatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return Note{}, nil
	case err != nil:
		return Note{}, fmt.Errorf("failed to query find stmt: %w", err)
	}

	shares, err := s.shares(dbCtx, id)
	if err != nil {
		return Note{}, err
	}
	note.SharedWith = shares

	s.toCache(ctx, key, note)

	return note, nil
}

func (s *SQL) shares(ctx context.Context, id uint64) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT identity FROM note_shares WHERE note_id = ? ORDER BY id", id)
	if err != nil {
		return nil, fmt.Errorf("failed to query shares stmt: %w", err)
	}
	defer rows.Close()

	shares := []string{}
	for rows.Next() {
		var identity string
		if err := rows.Scan(&identity); err != nil {
			return nil, fmt.Errorf("error parsing db data: %w", err)
		}
		shares = append(shares, identity)
	}
	return shares, rows.Err()
}

func (s *SQL) fromCache(ctx context.Context, key string) (Note, bool) {
	if s.cache == nil {
		return Note{}, false
	}

	tcCtx, tcCancel := context.WithTimeout(ctx, s.cfg.CacheOperationTimeout)
	defer tcCancel()
	get, err := s.cache.Get(tcCtx, key).Result()
	if err != nil && err != redis.Nil {
		s.log.Errorw("cache", "status", "get failed", "key", key, "ERROR", err)
	}
	if get == "" {
		return Note{}, false
	}

	var note Note
	if err := json.Unmarshal([]byte(get), &note); err != nil {
		s.log.Errorw("cache", "status", "unparseable cached note", "key", key, "ERROR", err)
		return Note{}, false
	}
	return note, true
}

func (s *SQL) toCache(ctx context.Context, key string, note Note) {
	if s.cache == nil {
		return
	}

	data, err := json.Marshal(note)
	if err != nil {
		s.log.Errorw("cache", "status", "could not marshal note", "key", key, "ERROR", err)
		return
	}

	tcCtx, tcCancel := context.WithTimeout(ctx, s.cfg.CacheOperationTimeout)
	defer tcCancel()
	if err := s.cache.Set(tcCtx, key, string(data), s.cfg.CacheTTL).Err(); err != nil {
		s.log.Errorw("cache", "status", "set failed", "key", key, "ERROR", err)
	}
}

// evict drops the cached copy of the note
func (s *SQL) evict(ctx context.Context, id uint64) error {
	if s.cache == nil {
		return nil
	}

	key := fmt.Sprintf(noteKey, id)
	tcCtx, tcCancel := context.WithTimeout(ctx, s.cfg.CacheOperationTimeout)
	defer tcCancel()
	if err := s.cache.Del(tcCtx, key).Err(); err != nil {
		return fmt.Errorf("failed to evict %s from cache: %w", key, err)
	}
	return nil
}
