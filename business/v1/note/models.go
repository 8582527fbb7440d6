package note

import "time"

type Note struct {
	Id         uint64    `json:"id" example:"1"`
	Owner      string    `json:"owner" example:"0x70997970C51812dc3A010C7d01b50e0d17dc79C8"`
	Content    string    `json:"content" example:"my note text"`
	IsPublic   bool      `json:"isPublic" example:"false"`
	SharedWith []string  `json:"sharedWith"`
	UpdatedAt  time.Time `json:"updatedAt" example:"2006-01-02T15:04:05Z"`
	CreatedAt  time.Time `json:"createdAt" example:"2006-01-02T15:04:05Z"`
}

type NewNote struct {
	Content  string `json:"content" example:"my note text"`
	IsPublic bool   `json:"isPublic" example:"true"`
}

type Sharing struct {
	IsPublic  bool     `json:"isPublic" example:"false"`
	Addresses []string `json:"addresses"`
}

// Event types written to the notification channel
const (
	EventNoteUpdated = "NoteUpdated"
	EventNoteShared  = "NoteShared"
)

type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

type Updated struct {
	Id uint64 `json:"id"`
}

type Shared struct {
	Id         uint64 `json:"id"`
	SharedWith string `json:"sharedWith"`
}

// Options tune repository behaviour
type Options struct {
	// PruneOwnerIndex removes deleted ids from the owner index, by default they stay listed forever
	PruneOwnerIndex bool
}
