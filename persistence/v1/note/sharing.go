package note

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// UpdateSharing sets the visibility and adds the addresses to the share set, already shared addresses are kept once.
// ErrNoNote when the note is gone, nothing is written then.
func (s *SQL) UpdateSharing(ctx context.Context, id uint64, isPublic bool, addresses []string) error {
	n := time.Now().UTC()

	return s.mutate(ctx, id, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "UPDATE notes SET is_public = ?, updated_at = ? WHERE id = ?", isPublic, n, id); err != nil {
			return fmt.Errorf("failed to exec update stmt: %w", err)
		}

		// the update holds the row, a delete committed before it leaves nothing to find
		var exists int
		if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM notes WHERE id = ?", id).Scan(&exists); err != nil {
			return fmt.Errorf("failed to query exists stmt: %w", err)
		}
		if exists == 0 {
			return ErrNoNote
		}

		for _, address := range addresses {
			var count int
			row := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM note_shares WHERE note_id = ? AND identity = ?", id, address)
			if err := row.Scan(&count); err != nil {
				return fmt.Errorf("failed to query share stmt: %w", err)
			}
			if count > 0 {
				continue
			}
			if _, err := tx.ExecContext(ctx, "INSERT INTO note_shares (note_id, identity) VALUES (?, ?)", id, address); err != nil {
				return fmt.Errorf("failed to exec share insert stmt: %w", err)
			}
		}
		return nil
	})
}
