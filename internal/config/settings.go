package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/checkup/internal/model"
)

// StartTab identifies the tab shown when the window opens
type StartTab string

const (
	TabTasks StartTab = "tasks"
	TabBMI   StartTab = "bmi"
	TabNotes StartTab = "notes"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage        = "app_language"
	KeyStartTab        = "start_tab"
	KeyConfirmDelete   = "confirm_delete"
	KeyTimestampLayout = "timestamp_layout"
)

// Default values
const (
	DefaultLanguage        = "system"
	DefaultStartTab        = TabTasks
	DefaultConfirmDelete   = false
	DefaultTimestampLayout = model.DefaultTimestampLayout
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	if lang == "" {
		lang = DefaultLanguage
	}
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetStartTab returns the tab selected at startup
func (s *Settings) GetStartTab() StartTab {
	tab := StartTab(s.app.Preferences().String(KeyStartTab))
	if !isKnownTab(tab) {
		s.SetStartTab(DefaultStartTab)
		return DefaultStartTab
	}
	return tab
}

// SetStartTab sets the tab selected at startup; unknown values reset to the default
func (s *Settings) SetStartTab(tab StartTab) {
	if !isKnownTab(tab) {
		tab = DefaultStartTab
	}
	s.app.Preferences().SetString(KeyStartTab, string(tab))
}

// GetConfirmDelete returns whether deleting a task asks for confirmation
func (s *Settings) GetConfirmDelete() bool {
	return s.app.Preferences().BoolWithFallback(KeyConfirmDelete, DefaultConfirmDelete)
}

// SetConfirmDelete sets whether deleting a task asks for confirmation
func (s *Settings) SetConfirmDelete(confirm bool) {
	s.app.Preferences().SetBool(KeyConfirmDelete, confirm)
}

// GetTimestampLayout returns the Go time layout used for the task timestamp column
func (s *Settings) GetTimestampLayout() string {
	layout := s.app.Preferences().String(KeyTimestampLayout)
	if layout == "" {
		s.SetTimestampLayout(DefaultTimestampLayout)
		return DefaultTimestampLayout
	}
	return layout
}

// SetTimestampLayout sets the timestamp layout
func (s *Settings) SetTimestampLayout(layout string) {
	if layout == "" {
		layout = DefaultTimestampLayout
	}
	s.app.Preferences().SetString(KeyTimestampLayout, layout)
}

// GetStartTabOptions returns available start tabs
func (s *Settings) GetStartTabOptions() []StartTab {
	return []StartTab{TabTasks, TabBMI, TabNotes}
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

func isKnownTab(tab StartTab) bool {
	switch tab {
	case TabTasks, TabBMI, TabNotes:
		return true
	}
	return false
}
