package note

import (
	"context"
	"fmt"
)

// OwnerNotes lists every id the owner created, ids are monotonic so id order is creation order
func (s *SQL) OwnerNotes(ctx context.Context, owner string) ([]uint64, error) {
	dbCtx, dbCancel := context.WithTimeout(ctx, s.cfg.OperationTimeout)
	defer dbCancel()

	rows, err := s.db.QueryContext(dbCtx, "SELECT note_id FROM owner_notes WHERE owner = ? ORDER BY note_id", owner)
	if err != nil {
		return nil, fmt.Errorf("failed to query owner notes stmt: %w", err)
	}
	defer rows.Close()

	ids := []uint64{}
	for rows.Next() {
		var id uint64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error parsing db data: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
