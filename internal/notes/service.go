package notes

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/checkup/internal/model"
)

// ErrBlankNote is returned when the submitted text is empty after trimming
var ErrBlankNote = errors.New("note text is blank")

// Service keeps board notes in the order they were appended
type Service struct {
	mu    sync.RWMutex
	notes []*model.Note
}

// NewService creates an empty notes board
func NewService() *Service {
	return &Service{notes: make([]*model.Note, 0)}
}

// Append adds a note to the end of the board
func (s *Service) Append(text string) (*model.Note, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, ErrBlankNote
	}

	note := &model.Note{
		ID:        "note-" + uuid.NewString(),
		Text:      trimmed,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.notes = append(s.notes, note)
	s.mu.Unlock()
	return note, nil
}

// GetAllNotes returns the notes in board order
func (s *Service) GetAllNotes() []*model.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()

	notes := make([]*model.Note, len(s.notes))
	copy(notes, s.notes)
	return notes
}

// Clear empties the board
func (s *Service) Clear() {
	s.mu.Lock()
	s.notes = s.notes[:0]
	s.mu.Unlock()
}
