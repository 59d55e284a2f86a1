package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/checkup/internal/config"
	"github.com/ytget/checkup/internal/model"
	"github.com/ytget/checkup/internal/tasks"
)

func newTestTaskListView(t *testing.T) (*TaskListView, *config.Settings, fyne.Window) {
	t.Helper()

	app := test.NewApp()
	t.Cleanup(app.Quit)

	svc := tasks.NewService()
	clock := time.Date(2026, time.October, 19, 14, 5, 9, 0, time.UTC)
	svc.SetClock(func() time.Time { return clock })

	settings := config.NewSettings(app)
	w := test.NewWindow(nil)
	t.Cleanup(w.Close)

	v := NewTaskListView(w, svc, settings, NewLocalization(), NewMobileUI(app))
	w.SetContent(v.Container())
	return v, settings, w
}

func rowTexts(v *TaskListView) []string {
	var texts []string
	for _, row := range v.VisibleRows() {
		texts = append(texts, row.Task().Text)
	}
	return texts
}

func TestTaskListView_AddTask(t *testing.T) {
	v, _, _ := newTestTaskListView(t)

	test.Type(v.taskEntry, "  buy milk  ")
	test.Tap(v.addBtn)

	rows := v.VisibleRows()
	require.Len(t, rows, 1)
	assert.Equal(t, "buy milk", rows[0].Task().Text)
	assert.Equal(t, 1, rows[0].Task().Ordinal)
	assert.Equal(t, "1", rows[0].ordinalLabel.Text)
	assert.Equal(t, "Mon, October 19, 2026, 2:05:09 PM", rows[0].timestampLabel.Text)
	assert.Equal(t, "Check", rows[0].checkBtn.Text)
	assert.Equal(t, "Delete", rows[0].deleteBtn.Text)
	assert.Empty(t, v.taskEntry.Text, "entry is cleared after adding")
}

func TestTaskListView_SubmitAddsTask(t *testing.T) {
	v, _, _ := newTestTaskListView(t)

	v.taskEntry.SetText("water plants")
	v.taskEntry.TypedKey(&fyne.KeyEvent{Name: fyne.KeyReturn})

	assert.Equal(t, []string{"water plants"}, rowTexts(v))
}

func TestTaskListView_BlankInputIgnored(t *testing.T) {
	v, _, _ := newTestTaskListView(t)

	for _, input := range []string{"", "   ", "\t\n"} {
		v.taskEntry.SetText(input)
		v.AddTask()
	}

	assert.Empty(t, v.VisibleRows())
	assert.Equal(t, "0 of 0 checked", v.summaryLabel.Text)
}

func TestTaskListView_ToggleTwiceRestores(t *testing.T) {
	v, _, _ := newTestTaskListView(t)

	v.taskEntry.SetText("read")
	v.AddTask()
	row := v.VisibleRows()[0]
	require.False(t, row.IsChecked())

	test.Tap(row.checkBtn)
	assert.True(t, row.IsChecked())
	assert.Equal(t, "Uncheck", row.checkBtn.Text)
	assert.Equal(t, "1 of 1 checked", v.summaryLabel.Text)

	test.Tap(row.checkBtn)
	assert.False(t, row.IsChecked())
	assert.Equal(t, "Check", row.checkBtn.Text)
}

func TestTaskListView_DeleteKeepsOrder(t *testing.T) {
	v, _, _ := newTestTaskListView(t)

	for _, text := range []string{"a", "b", "c"} {
		v.taskEntry.SetText(text)
		v.AddTask()
	}

	test.Tap(v.VisibleRows()[1].deleteBtn)

	assert.Equal(t, []string{"a", "c"}, rowTexts(v))
	rows := v.VisibleRows()
	assert.Equal(t, 1, rows[0].Task().Ordinal)
	assert.Equal(t, 3, rows[1].Task().Ordinal)

	v.taskEntry.SetText("d")
	v.AddTask()
	assert.Equal(t, 3, v.VisibleRows()[2].Task().Ordinal)
}

func TestTaskListView_ConfirmDeleteWaitsForAnswer(t *testing.T) {
	v, settings, _ := newTestTaskListView(t)
	settings.SetConfirmDelete(true)

	v.taskEntry.SetText("keep me")
	v.AddTask()

	v.DeleteItem(v.VisibleRows()[0].Task().ID)

	assert.Equal(t, []string{"keep me"}, rowTexts(v))
}

func TestTaskListView_Filter(t *testing.T) {
	v, _, _ := newTestTaskListView(t)

	for _, text := range []string{"one", "two", "three"} {
		v.taskEntry.SetText(text)
		v.AddTask()
	}
	v.ToggleCheck(v.VisibleRows()[1].Task().ID)

	v.SetFilter(model.TaskFilterChecked)
	assert.Equal(t, []string{"two"}, rowTexts(v))

	v.SetFilter(model.TaskFilterOpen)
	assert.Equal(t, []string{"one", "three"}, rowTexts(v))

	v.SetFilter(model.TaskFilterAll)
	assert.Equal(t, []string{"one", "two", "three"}, rowTexts(v))
}

func TestTaskListView_RefreshTexts(t *testing.T) {
	v, _, _ := newTestTaskListView(t)

	v.taskEntry.SetText("read")
	v.AddTask()

	v.localization.SetLanguage("ru")
	v.RefreshTexts()

	assert.Equal(t, "Удалить", v.VisibleRows()[0].deleteBtn.Text)
	assert.Equal(t, 0, v.filterSelect.SelectedIndex())
}
