package note

import "context"

// UpdateSharing sets the visibility and adds the addresses to the share list.
// Addresses already shared stay shared, nothing is ever removed from the list.
func (r *Repository) UpdateSharing(ctx context.Context, caller string, id uint64, s Sharing) error {
	defer r.begin(ctx, "UpdateSharing")()

	if _, err := r.owned(ctx, caller, id); err != nil {
		return err
	}

	if err := r.store.UpdateSharing(ctx, id, s.IsPublic, s.Addresses); err != nil {
		return stored(err)
	}

	r.log.Infow("note sharing updated", "note", id, "caller", caller, "public", s.IsPublic, "shared", len(s.Addresses))

	r.emit(ctx, Event{Type: EventNoteUpdated, Data: Updated{Id: id}})
	for _, address := range s.Addresses {
		r.emit(ctx, Event{Type: EventNoteShared, Data: Shared{Id: id, SharedWith: address}})
	}
	return nil
}

// IsSharedWithUser reports if identity is in the share list, visibility is not considered
func (r *Repository) IsSharedWithUser(ctx context.Context, id uint64, identity string) (bool, error) {
	defer r.begin(ctx, "IsSharedWithUser")()

	n, err := r.live(ctx, id)
	if err != nil {
		return false, err
	}
	return sharedWith(n, identity), nil
}

// emit hands the event to the channel, the operation already committed so failures are only logged
func (r *Repository) emit(ctx context.Context, e Event) {
	if r.emitter == nil {
		return
	}
	if err := r.emitter.Emit(ctx, e); err != nil {
		r.log.Errorw("event", "status", "emit failed", "type", e.Type, "ERROR", err)
	}
}
