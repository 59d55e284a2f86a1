package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/checkup/internal/bmi"
	"github.com/ytget/checkup/internal/notes"
	"github.com/ytget/checkup/internal/tasks"
	"github.com/ytget/checkup/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.checkup"
	AppName = "Checkup"

	WindowWidth  = 800
	WindowHeight = 600
)

func main() {
	log.Printf("%s v%s starting...", AppName, version)

	myApp := app.NewWithID(AppID)
	myApp.SetIcon(ui.LoadLogoResource())

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf(ui.WindowTitleFormat, AppName, version))
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	taskSvc := tasks.NewService()
	bmiSvc := bmi.NewService()
	notesSvc := notes.NewService()

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, taskSvc, bmiSvc, notesSvc)

	myWindow.ShowAndRun()
}
