package note

import "time"

const MaxTitleLength = 200

type Note struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Draft is the writable part of a note.
type Draft struct {
	UserID  string `json:"user_id,omitempty"`
	Title   string `json:"title"`
	Content string `json:"content"`
}
