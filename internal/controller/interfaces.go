package controller

// View is how the controller and runner talk back to the UI. Implementations
// must be safe to call from any goroutine.
type View interface {
	// ShowWarning reports a validation problem; nothing else happens
	ShowWarning(title, message string)

	// ShowError reports a failure with the underlying message
	ShowError(message string)

	// SetStatus updates the status bar text (and its traffic-light color)
	SetStatus(text string)

	// SetControlsEnabled toggles the whole interactive control set
	SetControlsEnabled(enabled bool)

	// SetProgress sets the progress indicator, 0.0 to 1.0
	SetProgress(value float64)

	// SetMaxClips writes a coerced max-clips value back into the form
	SetMaxClips(count int)
}
