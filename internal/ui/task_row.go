package ui

import (
	"fmt"
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/checkup/internal/model"
)

var _ mobile.Touchable = (*TaskRow)(nil)

// TaskRow is one row of the task table: ordinal, timestamp, text and the
// Check/Delete actions
type TaskRow struct {
	widget.BaseWidget

	task            *model.Task
	localization    *Localization
	timestampLayout string

	// UI components
	ordinalLabel   *widget.Label
	timestampLabel *widget.Label
	textLabel      *widget.Label
	background     *canvas.Rectangle
	minSize        *canvas.Rectangle
	content        fyne.CanvasObject
	gestures       *GestureHandler

	// Action buttons
	checkBtn  *widget.Button
	deleteBtn *widget.Button

	// Callbacks
	onToggle func(taskID string)
	onDelete func(taskID string)
}

// NewTaskRow creates a new task row widget
func NewTaskRow(task *model.Task, localization *Localization, timestampLayout string) *TaskRow {
	if task == nil {
		log.Printf("Warning: NewTaskRow called with nil task")
		task = &model.Task{ID: "template"}
	}

	tr := &TaskRow{
		task:            task,
		localization:    localization,
		timestampLayout: timestampLayout,
	}
	tr.ExtendBaseWidget(tr)
	tr.gestures = NewGestureHandler(tr.onGesture)
	tr.createUI()
	tr.updateFromTask()
	return tr
}

// SetCallbacks sets the action callbacks
func (tr *TaskRow) SetCallbacks(onToggle func(taskID string), onDelete func(taskID string)) {
	if onToggle == nil {
		log.Printf("Warning: onToggle callback is nil for task %s", tr.task.ID)
	}
	if onDelete == nil {
		log.Printf("Warning: onDelete callback is nil for task %s", tr.task.ID)
	}

	tr.onToggle = onToggle
	tr.onDelete = onDelete
}

// Task returns the task rendered by this row
func (tr *TaskRow) Task() *model.Task {
	return tr.task
}

// UpdateTask updates the row with new task data
func (tr *TaskRow) UpdateTask(task *model.Task) {
	if task == nil {
		log.Printf("Warning: UpdateTask called with nil task for existing task %s", tr.task.ID)
		return
	}

	tr.task = task
	tr.updateFromTask()
	tr.Refresh()
}

// SetMinHeight sets the minimum row height, taller on touch devices
func (tr *TaskRow) SetMinHeight(height float32) {
	tr.minSize.SetMinSize(fyne.NewSize(RowMinWidth, height))
	tr.Refresh()
}

// RefreshTexts re-reads localized button labels
func (tr *TaskRow) RefreshTexts() {
	tr.updateFromTask()
}

// createUI creates the UI components
func (tr *TaskRow) createUI() {
	tr.ordinalLabel = widget.NewLabel("")
	tr.ordinalLabel.Alignment = fyne.TextAlignTrailing
	tr.ordinalLabel.TextStyle = fyne.TextStyle{Monospace: true}

	tr.timestampLabel = widget.NewLabel("")
	tr.timestampLabel.Truncation = fyne.TextTruncateEllipsis

	tr.textLabel = widget.NewLabel("")
	tr.textLabel.Wrapping = fyne.TextWrapWord
	tr.textLabel.Alignment = fyne.TextAlignLeading

	tr.checkBtn = widget.NewButton(tr.localization.GetText(KeyCheck), func() {
		currentTask := tr.task
		if tr.onToggle == nil {
			log.Printf("onToggle callback is nil for task %s", currentTask.ID)
			return
		}
		tr.onToggle(currentTask.ID)
	})
	tr.checkBtn.Importance = widget.MediumImportance

	tr.deleteBtn = widget.NewButton(tr.localization.GetText(KeyDelete), func() {
		currentTask := tr.task
		if tr.onDelete == nil {
			log.Printf("onDelete callback is nil for task %s", currentTask.ID)
			return
		}
		tr.onDelete(currentTask.ID)
	})
	tr.deleteBtn.Importance = widget.DangerImportance

	tr.background = canvas.NewRectangle(checkedRowColor())
	tr.background.Hide()

	left := container.NewHBox(
		fixedWidth(OrdinalColumnWidth, tr.ordinalLabel),
		fixedWidth(TimestampColumnWidth, tr.timestampLabel),
	)
	actions := container.NewHBox(tr.checkBtn, tr.deleteBtn)
	row := container.NewBorder(nil, nil, left, actions, tr.textLabel)

	tr.minSize = canvas.NewRectangle(color.Transparent)
	tr.minSize.SetMinSize(fyne.NewSize(RowMinWidth, RowMinHeight))

	tr.content = container.NewStack(tr.minSize, tr.background, row)
}

// updateFromTask updates UI components based on task state
func (tr *TaskRow) updateFromTask() {
	if tr.task == nil {
		log.Printf("Warning: updateFromTask called with nil task")
		return
	}

	tr.ordinalLabel.SetText(fmt.Sprintf(OrdinalFormat, tr.task.Ordinal))
	if tr.task.CreatedAt.IsZero() {
		tr.timestampLabel.SetText(DashPlaceholder)
	} else {
		tr.timestampLabel.SetText(tr.task.FormatCreatedAt(tr.timestampLayout))
	}

	if tr.task.Checked {
		tr.textLabel.TextStyle = fyne.TextStyle{Italic: true}
		tr.textLabel.Importance = widget.SuccessImportance
		tr.textLabel.SetText(IconChecked + " " + tr.task.GetDisplayText())
		tr.checkBtn.SetText(tr.localization.GetText(KeyUncheck))
		tr.background.FillColor = checkedRowColor()
		tr.background.Show()
	} else {
		tr.textLabel.TextStyle = fyne.TextStyle{}
		tr.textLabel.Importance = widget.MediumImportance
		tr.textLabel.SetText(tr.task.GetDisplayText())
		tr.checkBtn.SetText(tr.localization.GetText(KeyCheck))
		tr.background.Hide()
	}
	tr.deleteBtn.SetText(tr.localization.GetText(KeyDelete))
	tr.background.Refresh()
}

// IsChecked reports whether the row currently shows the checked state
func (tr *TaskRow) IsChecked() bool {
	return tr.background.Visible()
}

// TouchDown handles touch down events
func (tr *TaskRow) TouchDown(event *mobile.TouchEvent) {
	tr.gestures.TouchDown(event)
}

// TouchUp handles touch up events
func (tr *TaskRow) TouchUp(event *mobile.TouchEvent) {
	tr.gestures.TouchUp(event)
}

// TouchCancel handles touch cancel events
func (tr *TaskRow) TouchCancel(event *mobile.TouchEvent) {
	tr.gestures.TouchCancel(event)
}

// onGesture maps swipes on a row to the row actions
func (tr *TaskRow) onGesture(gesture GestureType) {
	switch gesture {
	case GestureSwipeLeft:
		if tr.onDelete != nil {
			tr.onDelete(tr.task.ID)
		}
	case GestureSwipeRight, GestureLongPress:
		if tr.onToggle != nil {
			tr.onToggle(tr.task.ID)
		}
	}
}

// CreateRenderer creates the widget renderer
func (tr *TaskRow) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(tr.content)
}

// fixedWidth pins obj to width w using a transparent rectangle underneath
func fixedWidth(w float32, obj fyne.CanvasObject) fyne.CanvasObject {
	spacer := canvas.NewRectangle(color.RGBA{0, 0, 0, 0})
	spacer.SetMinSize(fyne.NewSize(w, obj.MinSize().Height))
	return container.NewStack(spacer, obj)
}
