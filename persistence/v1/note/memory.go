package note

import (
	"context"
	"sync"
	"time"
)

// Memory keeps notes in process memory, contents are lost on restart
type Memory struct {
	mu     sync.RWMutex
	lastID uint64
	notes  map[uint64]Note
	owners map[string][]uint64
}

func NewMemory() *Memory {
	return &Memory{
		notes:  make(map[uint64]Note),
		owners: make(map[string][]uint64),
	}
}

func (m *Memory) Insert(_ context.Context, newN NewNote) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := time.Now().UTC()
	m.lastID++
	m.notes[m.lastID] = Note{
		Id:         m.lastID,
		Owner:      newN.Owner,
		Content:    newN.Content,
		IsPublic:   newN.IsPublic,
		SharedWith: []string{},
		UpdatedAt:  n,
		CreatedAt:  n,
	}
	m.owners[newN.Owner] = append(m.owners[newN.Owner], m.lastID)
	return m.lastID, nil
}

func (m *Memory) Find(_ context.Context, id uint64) (Note, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	note, ok := m.notes[id]
	if !ok {
		return Note{}, nil
	}
	note.SharedWith = append([]string{}, note.SharedWith...)
	return note, nil
}

func (m *Memory) UpdateSharing(_ context.Context, id uint64, isPublic bool, addresses []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	note, ok := m.notes[id]
	if !ok {
		return ErrNoNote
	}
	note.IsPublic = isPublic
	shares := append([]string{}, note.SharedWith...)
	for _, address := range addresses {
		if !contains(shares, address) {
			shares = append(shares, address)
		}
	}
	note.SharedWith = shares
	note.UpdatedAt = time.Now().UTC()
	m.notes[id] = note
	return nil
}

func (m *Memory) Delete(_ context.Context, id uint64, pruneOwnerIndex bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	note, ok := m.notes[id]
	if !ok {
		return ErrNoNote
	}
	delete(m.notes, id)

	if pruneOwnerIndex {
		ids := m.owners[note.Owner]
		kept := make([]uint64, 0, len(ids))
		for _, other := range ids {
			if other != id {
				kept = append(kept, other)
			}
		}
		m.owners[note.Owner] = kept
	}
	return nil
}

func (m *Memory) OwnerNotes(_ context.Context, owner string) ([]uint64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([]uint64{}, m.owners[owner]...), nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
