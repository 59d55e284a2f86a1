package notes

import (
	"github.com/ytget/checkup/internal/model"
)

// Board defines the interface for the notes board service.
type Board interface {
	Append(text string) (*model.Note, error)
	GetAllNotes() []*model.Note
	Clear()
}
