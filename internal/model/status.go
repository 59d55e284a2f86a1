package model

// TaskFilter selects which task rows are visible in the table
type TaskFilter string

const (
	// TaskFilterAll shows every row
	TaskFilterAll TaskFilter = "All"

	// TaskFilterOpen shows rows that are not checked
	TaskFilterOpen TaskFilter = "Open"

	// TaskFilterChecked shows checked rows only
	TaskFilterChecked TaskFilter = "Checked"
)

// String returns the string representation of TaskFilter
func (tf TaskFilter) String() string {
	return string(tf)
}

// Matches reports whether the task is visible under this filter
func (tf TaskFilter) Matches(task *Task) bool {
	if task == nil {
		return false
	}
	switch tf {
	case TaskFilterOpen:
		return !task.Checked
	case TaskFilterChecked:
		return task.Checked
	default:
		return true
	}
}

// TaskFilters returns the filters in display order
func TaskFilters() []TaskFilter {
	return []TaskFilter{TaskFilterAll, TaskFilterOpen, TaskFilterChecked}
}
