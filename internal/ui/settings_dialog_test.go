package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"github.com/ytget/checkup/internal/config"
)

func TestSettingsDialog_LoadAndSave(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	w := test.NewWindow(nil)
	defer w.Close()

	settings := config.NewSettings(app)
	settings.SetLanguage("ru")
	settings.SetStartTab(config.TabNotes)

	saved := 0
	sd := NewSettingsDialog(settings, NewLocalization(), w, func() { saved++ })
	sd.loadCurrentSettings()

	assert.Equal(t, "ru", sd.languageCodes[sd.languageSelect.SelectedIndex()])
	assert.Equal(t, config.TabNotes, sd.startTabs[sd.startTabSelect.SelectedIndex()])
	assert.False(t, sd.confirmDeleteCheck.Checked)
	assert.Equal(t, config.DefaultTimestampLayout, sd.timestampEntry.Text)

	sd.languageSelect.SetSelectedIndex(0)
	sd.startTabSelect.SetSelectedIndex(1)
	sd.confirmDeleteCheck.SetChecked(true)
	sd.timestampEntry.SetText(" 2006-01-02 ")

	sd.onSave(false)
	assert.Equal(t, 0, saved, "cancel must not save")
	assert.Equal(t, "ru", settings.GetLanguage())

	sd.onSave(true)
	assert.Equal(t, 1, saved)
	assert.Equal(t, config.DefaultLanguage, settings.GetLanguage())
	assert.Equal(t, config.TabBMI, settings.GetStartTab())
	assert.True(t, settings.GetConfirmDelete())
	assert.Equal(t, "2006-01-02", settings.GetTimestampLayout())
}

func TestSettingsDialog_BlankLayoutKeepsStored(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	w := test.NewWindow(nil)
	defer w.Close()

	settings := config.NewSettings(app)
	settings.SetTimestampLayout("15:04")

	sd := NewSettingsDialog(settings, NewLocalization(), w, nil)
	sd.loadCurrentSettings()
	sd.timestampEntry.SetText("   ")
	sd.onSave(true)

	assert.Equal(t, "15:04", settings.GetTimestampLayout())
}
