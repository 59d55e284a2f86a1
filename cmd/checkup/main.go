package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/checkup/internal/bmi"
	"github.com/ytget/checkup/internal/notes"
	"github.com/ytget/checkup/internal/tasks"
	"github.com/ytget/checkup/internal/ui"
)

func main() {
	// Create new Fyne app
	myApp := app.NewWithID("com.ytget.checkup")
	myApp.Settings().SetTheme(ui.NewCompactTheme())
	myWindow := myApp.NewWindow("Checkup")
	myWindow.Resize(fyne.NewSize(800, 600))

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, tasks.NewService(), bmi.NewService(), notes.NewService())

	// Show and run
	myWindow.ShowAndRun()
}
