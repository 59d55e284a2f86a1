package model

// Package model defines domain data structures used across the app: task
// rows, the BMI result and its category bands, and notes on the notes board.
// Structures are designed for direct binding in the UI and explicit state
// transitions.
