package note

import (
	"context"
	"github.com/ribgsilva/notebook-api/persistence/v1/note"
)

// Create stores a new note owned by the caller and returns its id
func (r *Repository) Create(ctx context.Context, caller string, newN NewNote) (uint64, error) {
	defer r.begin(ctx, "Create")()

	id, err := r.store.Insert(ctx, note.NewNote{
		Owner:    caller,
		Content:  newN.Content,
		IsPublic: newN.IsPublic,
	})
	if err != nil {
		return 0, err
	}

	r.log.Infow("note created", "note", id, "caller", caller, "public", newN.IsPublic)
	return id, nil
}
