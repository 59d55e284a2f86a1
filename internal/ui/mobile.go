package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// MobileUI provides mobile-specific UI enhancements
type MobileUI struct {
	app fyne.App
}

// NewMobileUI creates a new mobile UI helper
func NewMobileUI(app fyne.App) *MobileUI {
	return &MobileUI{app: app}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	if m == nil || m.app == nil {
		return false
	}
	return m.app.Driver().Device().IsMobile()
}

// CreateMobileButton creates a button optimized for mobile touch
func (m *MobileUI) CreateMobileButton(text string, onTapped func()) *widget.Button {
	btn := widget.NewButton(text, onTapped)

	// For mobile devices, set minimum size for touch targets
	if m.IsMobileDevice() {
		btn.Resize(fyne.NewSize(MobileButtonWidth, MobileButtonHeight))
	}

	return btn
}

// CreateMobileEntry creates an entry field optimized for mobile
func (m *MobileUI) CreateMobileEntry(placeholder string) *widget.Entry {
	entry := widget.NewEntry()
	entry.SetPlaceHolder(placeholder)

	// For mobile devices, we'll rely on layout to provide proper sizing
	return entry
}

// RowMinHeight returns the task row height for the current device
func (m *MobileUI) RowMinHeight() float32 {
	if m.IsMobileDevice() {
		return MobileRowMinHeight
	}
	return RowMinHeight
}
