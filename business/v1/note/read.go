package note

import "context"

// Read returns the content when the note is public, owned by the caller or shared with the caller.
// Sharing grants access whatever the current visibility is.
func (r *Repository) Read(ctx context.Context, caller string, id uint64) (string, error) {
	defer r.begin(ctx, "Read")()

	n, err := r.live(ctx, id)
	if err != nil {
		return "", err
	}

	if n.IsPublic || n.Owner == caller || sharedWith(n, caller) {
		return n.Content, nil
	}
	return "", ErrUnauthorized
}

// Get returns the full note to its owner
func (r *Repository) Get(ctx context.Context, caller string, id uint64) (Note, error) {
	defer r.begin(ctx, "Get")()

	n, err := r.owned(ctx, caller, id)
	if err != nil {
		return Note{}, err
	}
	return Note(n), nil
}
