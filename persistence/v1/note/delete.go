package note

import (
	"context"
	"database/sql"
	"fmt"
)

// Delete removes the note and its shares, the owner index keeps the id unless pruneOwnerIndex is set.
// ErrNoNote when the note was already gone.
func (s *SQL) Delete(ctx context.Context, id uint64, pruneOwnerIndex bool) error {
	return s.mutate(ctx, id, func(ctx context.Context, tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, "DELETE FROM notes WHERE id = ?", id)
		if err != nil {
			return fmt.Errorf("failed to exec delete stmt: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to read deleted rows: %w", err)
		}
		if affected == 0 {
			return ErrNoNote
		}

		if _, err := tx.ExecContext(ctx, "DELETE FROM note_shares WHERE note_id = ?", id); err != nil {
			return fmt.Errorf("failed to exec share delete stmt: %w", err)
		}
		if pruneOwnerIndex {
			if _, err := tx.ExecContext(ctx, "DELETE FROM owner_notes WHERE note_id = ?", id); err != nil {
				return fmt.Errorf("failed to exec owner index delete stmt: %w", err)
			}
		}
		return nil
	})
}
