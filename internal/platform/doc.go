package platform

// Package platform contains OS integration glue: detection of the system
// language used when the language setting is "system".
