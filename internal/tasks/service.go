package tasks

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/checkup/internal/model"
)

var (
	// ErrBlankTask is returned when the submitted text is empty after trimming
	ErrBlankTask = errors.New("task text is blank")

	// ErrTaskNotFound is returned when no row has the given ID
	ErrTaskNotFound = errors.New("task not found")
)

// Service keeps task rows in insertion order
type Service struct {
	tasks      []*model.Task
	tasksMutex sync.RWMutex
	now        func() time.Time
	onUpdate   func(*model.Task) // callback for UI updates
}

// NewService creates a new task service
func NewService() *Service {
	return &Service{
		tasks: make([]*model.Task, 0),
		now:   time.Now,
	}
}

// SetClock replaces the time source used for CreatedAt
func (s *Service) SetClock(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	s.now = now
}

// SetUpdateCallback sets the callback function for task updates
func (s *Service) SetUpdateCallback(callback func(*model.Task)) {
	s.onUpdate = callback
}

// AddTask appends a row for the trimmed text. The ordinal is the current
// row count plus one and is never renumbered afterwards.
func (s *Service) AddTask(text string) (*model.Task, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, ErrBlankTask
	}

	s.tasksMutex.Lock()
	task := &model.Task{
		ID:        generateTaskID(),
		Ordinal:   len(s.tasks) + 1,
		Text:      trimmed,
		CreatedAt: s.now(),
	}
	s.tasks = append(s.tasks, task)
	s.tasksMutex.Unlock()

	log.Printf("Task added: id=%s ordinal=%d", task.ID, task.Ordinal)
	s.notifyUpdate(task)
	return task, nil
}

// GetTask returns a task by ID
func (s *Service) GetTask(id string) (*model.Task, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, false
	}
	return s.tasks[idx], true
}

// GetAllTasks returns all tasks in table order
func (s *Service) GetAllTasks() []*model.Task {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()

	tasks := make([]*model.Task, len(s.tasks))
	copy(tasks, s.tasks)
	return tasks
}

// ToggleTask flips the checked state of a row
func (s *Service) ToggleTask(id string) (*model.Task, error) {
	s.tasksMutex.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.tasksMutex.Unlock()
		return nil, fmt.Errorf("toggle %s: %w", id, ErrTaskNotFound)
	}
	task := s.tasks[idx]
	task.Toggle()
	s.tasksMutex.Unlock()

	log.Printf("Task toggled: id=%s checked=%v", task.ID, task.Checked)
	s.notifyUpdate(task)
	return task, nil
}

// RemoveTask deletes a row, keeping the relative order of the others
func (s *Service) RemoveTask(id string) error {
	s.tasksMutex.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.tasksMutex.Unlock()
		return fmt.Errorf("remove %s: %w", id, ErrTaskNotFound)
	}
	task := s.tasks[idx]
	s.tasks = append(s.tasks[:idx], s.tasks[idx+1:]...)
	s.tasksMutex.Unlock()

	log.Printf("Task removed: id=%s", id)
	s.notifyUpdate(task)
	return nil
}

// CountChecked returns the number of checked rows and the total row count
func (s *Service) CountChecked() (checked int, total int) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()

	for _, task := range s.tasks {
		if task.Checked {
			checked++
		}
	}
	return checked, len(s.tasks)
}

// indexOf must be called with tasksMutex held
func (s *Service) indexOf(id string) int {
	for i, task := range s.tasks {
		if task.ID == id {
			return i
		}
	}
	return -1
}

// notifyUpdate notifies UI about task updates
func (s *Service) notifyUpdate(task *model.Task) {
	if s.onUpdate != nil {
		s.onUpdate(task)
	}
}

// generateTaskID generates a unique task ID
func generateTaskID() string {
	return "task-" + uuid.NewString()
}
