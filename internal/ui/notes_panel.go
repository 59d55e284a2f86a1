package ui

import (
	"errors"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/checkup/internal/notes"
)

// NotesView is the notes tab: each submitted line becomes a heading on the board
type NotesView struct {
	window       fyne.Window
	board        notes.Board
	localization *Localization

	noteEntry *widget.Entry
	addBtn    *widget.Button
	clearBtn  *widget.Button
	boardBox  *fyne.Container
	container *fyne.Container
}

// NewNotesView creates the notes tab
func NewNotesView(window fyne.Window, board notes.Board, localization *Localization, mobileUI *MobileUI) *NotesView {
	v := &NotesView{
		window:       window,
		board:        board,
		localization: localization,
	}

	v.noteEntry = mobileUI.CreateMobileEntry(localization.GetText(KeyNotePlaceholder))
	v.noteEntry.OnSubmitted = func(string) {
		v.AddNote()
	}
	v.addBtn = mobileUI.CreateMobileButton(localization.GetText(KeyAdd), v.AddNote)
	v.clearBtn = mobileUI.CreateMobileButton(localization.GetText(KeyClear), v.ClearBoard)
	v.clearBtn.Importance = widget.LowImportance

	v.boardBox = container.NewVBox()
	v.container = container.NewBorder(
		container.NewBorder(nil, nil, nil, container.NewHBox(v.addBtn, v.clearBtn), v.noteEntry),
		nil, nil, nil,
		container.NewVScroll(v.boardBox),
	)
	v.renderBoard()
	return v
}

// Container returns the root object of the tab
func (v *NotesView) Container() *fyne.Container {
	return v.container
}

// AddNote appends the entry text to the board, clears the entry and gives
// it focus again
func (v *NotesView) AddNote() {
	_, err := v.board.Append(v.noteEntry.Text)
	if err != nil {
		if !errors.Is(err, notes.ErrBlankNote) {
			log.Printf("Failed to add note: %v", err)
		}
		return
	}

	v.noteEntry.SetText("")
	if v.window != nil {
		v.window.Canvas().Focus(v.noteEntry)
	}
	v.renderBoard()
}

// ClearBoard removes every note
func (v *NotesView) ClearBoard() {
	v.board.Clear()
	v.renderBoard()
}

// Headings returns the texts currently rendered on the board
func (v *NotesView) Headings() []string {
	headings := make([]string, 0, len(v.boardBox.Objects))
	for _, obj := range v.boardBox.Objects {
		if rt, ok := obj.(*widget.RichText); ok {
			headings = append(headings, rt.String())
		}
	}
	return headings
}

// RefreshTexts updates all texts after a language change
func (v *NotesView) RefreshTexts() {
	v.noteEntry.SetPlaceHolder(v.localization.GetText(KeyNotePlaceholder))
	v.addBtn.SetText(v.localization.GetText(KeyAdd))
	v.clearBtn.SetText(v.localization.GetText(KeyClear))
}

func (v *NotesView) renderBoard() {
	all := v.board.GetAllNotes()
	objects := make([]fyne.CanvasObject, 0, len(all))
	for _, note := range all {
		objects = append(objects, widget.NewRichText(&widget.TextSegment{
			Style: widget.RichTextStyleSubHeading,
			Text:  note.Text,
		}))
	}
	v.boardBox.Objects = objects
	v.boardBox.Refresh()
}
