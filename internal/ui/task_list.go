package ui

import (
	"errors"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/checkup/internal/config"
	"github.com/ytget/checkup/internal/model"
	"github.com/ytget/checkup/internal/tasks"
)

// TaskListView is the task table tab: an input row, the filter, the header
// and one TaskRow per visible task
type TaskListView struct {
	window       fyne.Window
	taskMgr      tasks.Manager
	settings     *config.Settings
	localization *Localization
	mobileUI     *MobileUI

	currentFilter model.TaskFilter

	// UI components
	taskEntry    *widget.Entry
	addBtn       *widget.Button
	filterSelect *widget.Select
	summaryLabel *widget.Label
	headerLabels []*widget.Label
	rowsBox      *fyne.Container
	container    *fyne.Container

	rows map[string]*TaskRow
}

// NewTaskListView creates the task table and subscribes it to task updates
func NewTaskListView(window fyne.Window, taskMgr tasks.Manager, settings *config.Settings, localization *Localization, mobileUI *MobileUI) *TaskListView {
	v := &TaskListView{
		window:        window,
		taskMgr:       taskMgr,
		settings:      settings,
		localization:  localization,
		mobileUI:      mobileUI,
		currentFilter: model.TaskFilterAll,
		rows:          make(map[string]*TaskRow),
	}

	v.taskMgr.SetUpdateCallback(v.onTaskUpdate)
	v.createUI()
	v.refreshRows()
	return v
}

// Container returns the root object of the tab
func (v *TaskListView) Container() *fyne.Container {
	return v.container
}

// createUI creates the user interface for the task table
func (v *TaskListView) createUI() {
	v.taskEntry = v.mobileUI.CreateMobileEntry(v.localization.GetText(KeyTaskPlaceholder))
	// Enter in the task field adds the task
	v.taskEntry.OnSubmitted = func(string) {
		v.AddTask()
	}

	v.addBtn = v.mobileUI.CreateMobileButton(v.localization.GetText(KeyAdd), v.AddTask)
	v.addBtn.Importance = widget.HighImportance

	v.filterSelect = widget.NewSelect(v.filterOptions(), nil)
	v.filterSelect.SetSelectedIndex(0)
	v.filterSelect.OnChanged = v.onFilterSelected

	v.summaryLabel = widget.NewLabel("")

	inputRow := container.NewBorder(nil, nil, nil, v.addBtn, v.taskEntry)
	filterRow := container.NewBorder(nil, nil, v.filterSelect, nil, v.summaryLabel)

	v.headerLabels = []*widget.Label{
		widget.NewLabel(v.localization.GetText(KeyColumnOrdinal)),
		widget.NewLabel(v.localization.GetText(KeyColumnDate)),
		widget.NewLabel(v.localization.GetText(KeyColumnTask)),
		widget.NewLabel(v.localization.GetText(KeyColumnActions)),
	}
	for _, label := range v.headerLabels {
		label.TextStyle = fyne.TextStyle{Bold: true}
	}
	header := container.NewBorder(nil, nil,
		container.NewHBox(
			fixedWidth(OrdinalColumnWidth, v.headerLabels[0]),
			fixedWidth(TimestampColumnWidth, v.headerLabels[1]),
		),
		fixedWidth(ActionsColumnWidth, v.headerLabels[3]),
		v.headerLabels[2],
	)

	v.rowsBox = container.NewVBox()

	v.container = container.NewBorder(
		container.NewVBox(inputRow, filterRow, header, widget.NewSeparator()), // top
		nil,                             // bottom
		nil,                             // left
		nil,                             // right
		container.NewVScroll(v.rowsBox), // center - scrollable rows
	)
}

// AddTask appends a row for the entry text and clears the entry. Blank
// input is ignored without feedback.
func (v *TaskListView) AddTask() {
	_, err := v.taskMgr.AddTask(v.taskEntry.Text)
	if errors.Is(err, tasks.ErrBlankTask) {
		return
	}
	if err != nil {
		log.Printf("Failed to add task: %v", err)
		return
	}

	v.taskEntry.SetText("")
}

// ToggleCheck toggles the checked state of the row with the given task ID
func (v *TaskListView) ToggleCheck(taskID string) {
	if _, err := v.taskMgr.ToggleTask(taskID); err != nil {
		log.Printf("Failed to toggle task: %v", err)
	}
}

// DeleteItem removes the row with the given task ID, asking first when the
// confirm-delete setting is on
func (v *TaskListView) DeleteItem(taskID string) {
	if v.settings == nil || !v.settings.GetConfirmDelete() {
		v.removeTask(taskID)
		return
	}

	task, exists := v.taskMgr.GetTask(taskID)
	if !exists {
		log.Printf("Delete requested for unknown task %s", taskID)
		return
	}

	message := v.localization.Format(KeyConfirmDeleteMessage, map[string]any{"Text": task.GetDisplayText()})
	dialog.ShowConfirm(v.localization.GetText(KeyConfirmDeleteTitle), message, func(confirmed bool) {
		if confirmed {
			v.removeTask(taskID)
		}
	}, v.window)
}

func (v *TaskListView) removeTask(taskID string) {
	if err := v.taskMgr.RemoveTask(taskID); err != nil {
		log.Printf("Failed to remove task: %v", err)
	}
}

// onTaskUpdate is the task service update callback. The service notifies
// synchronously from the handler that changed it, so this runs on the UI thread.
func (v *TaskListView) onTaskUpdate(task *model.Task) {
	v.refreshRows()
}

// onFilterSelected handles filter changes
func (v *TaskListView) onFilterSelected(string) {
	filters := model.TaskFilters()
	idx := v.filterSelect.SelectedIndex()
	if idx < 0 || idx >= len(filters) {
		return
	}
	v.currentFilter = filters[idx]
	v.refreshRows()
}

// SetFilter selects a filter programmatically
func (v *TaskListView) SetFilter(filter model.TaskFilter) {
	for i, f := range model.TaskFilters() {
		if f == filter {
			v.filterSelect.SetSelectedIndex(i)
			return
		}
	}
}

// refreshRows rebuilds the visible rows from the task service, reusing
// existing TaskRow widgets
func (v *TaskListView) refreshRows() {
	all := v.taskMgr.GetAllTasks()
	layout := v.timestampLayout()

	alive := make(map[string]bool, len(all))
	objects := make([]fyne.CanvasObject, 0, len(all))
	for _, task := range all {
		alive[task.ID] = true

		row, exists := v.rows[task.ID]
		if !exists {
			row = NewTaskRow(task, v.localization, layout)
			row.SetCallbacks(v.ToggleCheck, v.DeleteItem)
			row.SetMinHeight(v.mobileUI.RowMinHeight())
			v.rows[task.ID] = row
		} else {
			row.timestampLayout = layout
			row.UpdateTask(task)
		}

		if v.currentFilter.Matches(task) {
			objects = append(objects, row)
		}
	}

	for id := range v.rows {
		if !alive[id] {
			delete(v.rows, id)
		}
	}

	v.rowsBox.Objects = objects
	v.rowsBox.Refresh()

	checked, total := v.taskMgr.CountChecked()
	v.summaryLabel.SetText(v.localization.Format(KeyTasksSummary, map[string]any{"Checked": checked, "Total": total}))
}

// VisibleRows returns the rows currently shown in table order
func (v *TaskListView) VisibleRows() []*TaskRow {
	rows := make([]*TaskRow, 0, len(v.rowsBox.Objects))
	for _, obj := range v.rowsBox.Objects {
		if row, ok := obj.(*TaskRow); ok {
			rows = append(rows, row)
		}
	}
	return rows
}

// RefreshTexts updates all texts after a language change
func (v *TaskListView) RefreshTexts() {
	v.taskEntry.SetPlaceHolder(v.localization.GetText(KeyTaskPlaceholder))
	v.addBtn.SetText(v.localization.GetText(KeyAdd))

	keys := []string{KeyColumnOrdinal, KeyColumnDate, KeyColumnTask, KeyColumnActions}
	for i, key := range keys {
		v.headerLabels[i].SetText(v.localization.GetText(key))
	}

	idx := v.filterSelect.SelectedIndex()
	v.filterSelect.Options = v.filterOptions()
	if idx >= 0 {
		v.filterSelect.SetSelectedIndex(idx)
	}
	v.filterSelect.Refresh()

	for _, row := range v.rows {
		row.RefreshTexts()
	}
	v.refreshRows()
}

func (v *TaskListView) filterOptions() []string {
	filters := model.TaskFilters()
	options := make([]string, 0, len(filters))
	for _, f := range filters {
		options = append(options, v.localization.FilterLabel(f))
	}
	return options
}

func (v *TaskListView) timestampLayout() string {
	if v.settings == nil {
		return model.DefaultTimestampLayout
	}
	return v.settings.GetTimestampLayout()
}
