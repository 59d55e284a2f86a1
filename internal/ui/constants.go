package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconChecked  = "✓"
)

// Text fragments
const (
	DashPlaceholder   = "—"
	OrdinalFormat     = "%d"
	WindowTitleFormat = "%s v%s"
)

// Layout sizing (task table)
const (
	OrdinalColumnWidth   float32 = 40
	TimestampColumnWidth float32 = 250
	ActionsColumnWidth   float32 = 170

	RowMinWidth  float32 = 520
	RowMinHeight float32 = 40

	BMIPanelWidth float32 = 360

	// Mobile-specific sizing
	MobileRowMinHeight float32 = 56

	// Touch target sizes (iOS/Android guidelines)
	MobileButtonWidth  float32 = 60
	MobileButtonHeight float32 = 48
)

// Tooltip behavior
const (
	PopUpAutoHide = 1500 * time.Millisecond
)
