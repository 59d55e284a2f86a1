package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/checkup/internal/config"
)

// Dialog sizing
const (
	SettingsDialogWidth  float32 = 460
	SettingsDialogHeight float32 = 380
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	languageSelect     *widget.Select
	startTabSelect     *widget.Select
	confirmDeleteCheck *widget.Check
	timestampEntry     *widget.Entry
	languageCodes      []string
	startTabs          []config.StartTab
}

// ShowSettingsDialog builds and shows the settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) *SettingsDialog {
	sd := NewSettingsDialog(settings, localization, window, onSaved)
	sd.Show()
	return sd
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Language selection, "system" first
	languageLabels := sd.settings.GetLanguageOptions()
	sd.languageCodes = []string{config.DefaultLanguage}
	for _, code := range sd.localization.SortedLanguageCodes() {
		if _, ok := languageLabels[code]; ok {
			sd.languageCodes = append(sd.languageCodes, code)
		}
	}
	languageOptions := make([]string, 0, len(sd.languageCodes))
	for _, code := range sd.languageCodes {
		languageOptions = append(languageOptions, languageLabels[code])
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	// Start tab selection
	sd.startTabs = sd.settings.GetStartTabOptions()
	tabOptions := make([]string, 0, len(sd.startTabs))
	for _, tab := range sd.startTabs {
		tabOptions = append(tabOptions, sd.tabLabel(tab))
	}
	sd.startTabSelect = widget.NewSelect(tabOptions, nil)

	sd.confirmDeleteCheck = widget.NewCheck(sd.localization.GetText(KeyConfirmDeleteSetting), nil)

	sd.timestampEntry = widget.NewEntry()
	sd.timestampEntry.SetPlaceHolder(config.DefaultTimestampLayout)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyInterfaceSettings)),
		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,

		widget.NewLabel(sd.localization.GetText(KeyStartTab)+":"),
		sd.startTabSelect,

		widget.NewSeparator(),
		widget.NewLabel(sd.localization.GetText(KeyTaskSettings)),
		widget.NewSeparator(),

		sd.confirmDeleteCheck,

		widget.NewLabel(sd.localization.GetText(KeyTimestampLayout)+":"),
		sd.timestampEntry,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	current := sd.settings.GetLanguage()
	for i, code := range sd.languageCodes {
		if code == current {
			sd.languageSelect.SetSelectedIndex(i)
			break
		}
	}

	tab := sd.settings.GetStartTab()
	for i, t := range sd.startTabs {
		if t == tab {
			sd.startTabSelect.SetSelectedIndex(i)
			break
		}
	}

	sd.confirmDeleteCheck.SetChecked(sd.settings.GetConfirmDelete())
	sd.timestampEntry.SetText(sd.settings.GetTimestampLayout())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if idx := sd.languageSelect.SelectedIndex(); idx >= 0 && idx < len(sd.languageCodes) {
		sd.settings.SetLanguage(sd.languageCodes[idx])
	}

	if idx := sd.startTabSelect.SelectedIndex(); idx >= 0 && idx < len(sd.startTabs) {
		sd.settings.SetStartTab(sd.startTabs[idx])
	}

	sd.settings.SetConfirmDelete(sd.confirmDeleteCheck.Checked)

	// Blank layout keeps the stored one
	if layout := strings.TrimSpace(sd.timestampEntry.Text); layout != "" {
		sd.settings.SetTimestampLayout(layout)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}

func (sd *SettingsDialog) tabLabel(tab config.StartTab) string {
	switch tab {
	case config.TabBMI:
		return sd.localization.GetText(KeyTabBMI)
	case config.TabNotes:
		return sd.localization.GetText(KeyTabNotes)
	default:
		return sd.localization.GetText(KeyTabTasks)
	}
}
