package note

import "context"

// Delete removes a note owned by the caller, its id is never valid again
func (r *Repository) Delete(ctx context.Context, caller string, id uint64) error {
	defer r.begin(ctx, "Delete")()

	if _, err := r.owned(ctx, caller, id); err != nil {
		return err
	}

	if err := r.store.Delete(ctx, id, r.opts.PruneOwnerIndex); err != nil {
		return stored(err)
	}

	r.log.Infow("note deleted", "note", id, "caller", caller)
	return nil
}

// UserNotes lists the ids the caller created in creation order. Deleted ids are listed too
// unless the owner index is pruned, callers get ErrNotFound when following them.
func (r *Repository) UserNotes(ctx context.Context, caller string) ([]uint64, error) {
	defer r.begin(ctx, "UserNotes")()

	return r.store.OwnerNotes(ctx, caller)
}
