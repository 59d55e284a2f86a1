package ui

import (
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/checkup/internal/bmi"
	"github.com/ytget/checkup/internal/config"
	"github.com/ytget/checkup/internal/notes"
	"github.com/ytget/checkup/internal/tasks"
)

// Logo sizing
const (
	RootLogoSize float32 = 32
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	mobileUI     *MobileUI

	taskView  *TaskListView
	bmiView   *BMIView
	notesView *NotesView

	tabs     *container.AppTabs
	tasksTab *container.TabItem
	bmiTab   *container.TabItem
	notesTab *container.TabItem
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, taskMgr tasks.Manager, calculator bmi.Calculator, board notes.Board) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		mobileUI:     NewMobileUI(app),
	}

	ui.taskView = NewTaskListView(window, taskMgr, settings, localization, ui.mobileUI)
	ui.bmiView = NewBMIView(window, calculator, localization, ui.mobileUI)
	ui.notesView = NewNotesView(window, board, localization, ui.mobileUI)

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.tasksTab = container.NewTabItem(ui.localization.GetText(KeyTabTasks), ui.taskView.Container())
	ui.bmiTab = container.NewTabItem(ui.localization.GetText(KeyTabBMI), ui.bmiView.Container())
	ui.notesTab = container.NewTabItem(ui.localization.GetText(KeyTabNotes), ui.notesView.Container())
	ui.tabs = container.NewAppTabs(ui.tasksTab, ui.bmiTab, ui.notesTab)
	ui.tabs.SelectIndex(ui.startTabIndex())

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	logoImage := canvas.NewImageFromResource(LoadLogoResource())
	logoImage.SetMinSize(fyne.NewSize(RootLogoSize, RootLogoSize))
	logoImage.FillMode = canvas.ImageFillContain

	topPanel := container.NewBorder(nil, nil, logoImage, settingsBtn)

	content := container.NewBorder(
		topPanel, // top
		nil,      // bottom
		nil,      // left
		nil,      // right
		ui.tabs,  // center
	)

	ui.window.SetContent(content)

	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	available := ui.localization.GetAvailableLanguages()
	for _, code := range ui.localization.SortedLanguageCodes() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(available[code], func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.tasksTab.Text = ui.localization.GetText(KeyTabTasks)
	ui.bmiTab.Text = ui.localization.GetText(KeyTabBMI)
	ui.notesTab.Text = ui.localization.GetText(KeyTabNotes)
	ui.tabs.Refresh()

	ui.taskView.RefreshTexts()
	ui.bmiView.RefreshTexts()
	ui.notesView.RefreshTexts()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.onSettingsSaved)
}

// onSettingsSaved applies saved settings to the running UI
func (ui *RootUI) onSettingsSaved() {
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.refreshUITexts()
	ui.createMenu()

	popUp := widget.NewPopUp(widget.NewLabel(ui.localization.GetText(KeySettingsSaved)), ui.window.Canvas())
	popUp.Show()
	time.AfterFunc(PopUpAutoHide, func() {
		fyne.Do(popUp.Hide)
	})
}

// startTabIndex maps the configured start tab to its AppTabs index
func (ui *RootUI) startTabIndex() int {
	switch ui.settings.GetStartTab() {
	case config.TabBMI:
		return 1
	case config.TabNotes:
		return 2
	default:
		return 0
	}
}

// SelectedTab returns the index of the visible tab
func (ui *RootUI) SelectedTab() int {
	return ui.tabs.SelectedIndex()
}

// TaskView returns the task table tab
func (ui *RootUI) TaskView() *TaskListView {
	return ui.taskView
}

// BMIView returns the BMI tab
func (ui *RootUI) BMIView() *BMIView {
	return ui.bmiView
}

// NotesView returns the notes tab
func (ui *RootUI) NotesView() *NotesView {
	return ui.notesView
}
