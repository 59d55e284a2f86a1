package ui

// Package ui contains the Fyne-based user interface for the application.
// It wires user interactions to the task, BMI and notes services and renders
// the task table, the BMI result panel, the notes board and settings. All UI
// strings are localized via Localization.
