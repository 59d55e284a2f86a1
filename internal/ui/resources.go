package ui

import (
	_ "embed"

	"fyne.io/fyne/v2"
)

const (
	AppIcon = "checkup.svg"
)

//go:embed checkup.svg
var appIconSVG []byte

// LogoResource represents the embedded logo resource
var LogoResource = fyne.NewStaticResource(AppIcon, appIconSVG)

// LoadLogoResource returns the application logo
func LoadLogoResource() fyne.Resource {
	return LogoResource
}
