package tasks

import (
	"github.com/ytget/checkup/internal/model"
)

// Manager defines the interface for the task service.
type Manager interface {
	SetUpdateCallback(func(*model.Task))
	AddTask(text string) (*model.Task, error)
	GetTask(id string) (*model.Task, bool)
	GetAllTasks() []*model.Task
	ToggleTask(id string) (*model.Task, error)
	RemoveTask(id string) error
	CountChecked() (checked int, total int)
}
