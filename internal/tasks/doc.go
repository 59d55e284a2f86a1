package tasks

// Package tasks owns the task table's row collection: it appends rows with
// their ordinal and timestamp, toggles the checked state and removes rows,
// and notifies the UI about every change through an update callback.
