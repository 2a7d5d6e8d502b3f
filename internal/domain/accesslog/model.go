package accesslog

import "time"

const (
	// RecentLimit is how many entries Recent returns.
	RecentLimit = 50
	// Retention is the age after which entries are pruned.
	Retention = 14 * 24 * time.Hour

	UnknownIP = "Unknown"
)

// Actions recorded by the client.
const (
	ActionView   = "view"
	ActionEdit   = "edit"
	ActionCreate = "create"
	ActionDelete = "delete"
)

type Entry struct {
	ID        string    `json:"id,omitempty"`
	UserID    string    `json:"user_id"`
	NoteID    string    `json:"note_id"`
	Action    string    `json:"action"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	IPAddress string    `json:"ip_address,omitempty"`
	UserAgent string    `json:"user_agent,omitempty"`
	Browser   string    `json:"browser,omitempty"`
	OS        string    `json:"os,omitempty"`
	Device    string    `json:"device,omitempty"`

	// NoteTitle is filled on retrieval and never stored.
	NoteTitle string `json:"note_title,omitempty"`
}
