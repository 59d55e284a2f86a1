package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"github.com/ytget/checkup/internal/notes"
)

func TestNotesView_AddNote(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	w := test.NewWindow(nil)
	defer w.Close()

	v := NewNotesView(w, notes.NewService(), NewLocalization(), NewMobileUI(app))
	w.SetContent(v.Container())

	test.Type(v.noteEntry, "first")
	test.Tap(v.addBtn)
	v.noteEntry.SetText("  second ")
	v.noteEntry.TypedKey(&fyne.KeyEvent{Name: fyne.KeyReturn})

	assert.Equal(t, []string{"first", "second"}, v.Headings())
	assert.Empty(t, v.noteEntry.Text)
	assert.Equal(t, fyne.Focusable(v.noteEntry), w.Canvas().Focused())

	v.noteEntry.SetText("   ")
	v.AddNote()
	assert.Len(t, v.Headings(), 2, "blank note is ignored")
	assert.Equal(t, "   ", v.noteEntry.Text)

	test.Tap(v.clearBtn)
	assert.Empty(t, v.Headings())
}
