package model

import (
	"strings"
	"time"
)

// DefaultTimestampLayout mirrors an en-US long date with short weekday and
// time, e.g. "Mon, October 19, 2026, 3:04:05 PM".
const DefaultTimestampLayout = "Mon, January 2, 2006, 3:04:05 PM"

// Task represents a single row of the task table
type Task struct {
	ID        string
	Ordinal   int       // 1-based position assigned on insertion
	Text      string    // trimmed task text
	Checked   bool      // checked visual state
	CreatedAt time.Time // when the row was added
}

// Toggle flips the checked state and returns the new value
func (t *Task) Toggle() bool {
	t.Checked = !t.Checked
	return t.Checked
}

// FormatCreatedAt returns the creation timestamp using layout, falling back
// to DefaultTimestampLayout when layout is empty
func (t *Task) FormatCreatedAt(layout string) string {
	if layout == "" {
		layout = DefaultTimestampLayout
	}
	return t.CreatedAt.Format(layout)
}

// GetDisplayText returns the text with line breaks and tabs flattened so it
// fits a single table cell
func (t *Task) GetDisplayText() string {
	text := strings.ReplaceAll(t.Text, "\n", " ")
	text = strings.ReplaceAll(text, "\r", " ")
	text = strings.ReplaceAll(text, "\t", " ")
	return strings.TrimSpace(text)
}
