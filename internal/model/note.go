package model

import "time"

// Note is a single heading appended to the notes board
type Note struct {
	ID        string
	Text      string
	CreatedAt time.Time
}
