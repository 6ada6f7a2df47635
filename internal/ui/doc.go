package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It collects form input, forwards actions to the controller and renders the
// activity log, status bar and progress coming back from background work.
