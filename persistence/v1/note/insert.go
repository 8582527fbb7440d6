package note

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

func (s *SQL) Insert(ctx context.Context, newN NewNote) (uint64, error) {
	n := time.Now().UTC()

	dbCtx, dbCancel := context.WithTimeout(ctx, s.cfg.OperationTimeout)
	defer dbCancel()

	var id uint64
	err := s.inTx(dbCtx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(dbCtx, "INSERT INTO notes (owner, content, is_public, updated_at, created_at) VALUES (?, ?, ?, ?, ?)",
			newN.Owner, newN.Content, newN.IsPublic, n, n)
		if err != nil {
			return fmt.Errorf("failed to exec insert stmt: %w", err)
		}
		lastID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get inserted id: %w", err)
		}
		id = uint64(lastID)

		if _, err := tx.ExecContext(dbCtx, "INSERT INTO owner_notes (owner, note_id) VALUES (?, ?)", newN.Owner, id); err != nil {
			return fmt.Errorf("failed to exec owner index insert stmt: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}
