package controller

// Package controller wires user actions to the agent: it validates form
// input, owns the single agent handle and its log subscription, and hands
// asynchronous work to the task runner. It has no Fyne dependency; the UI
// implements the View interface and every View call that reaches it from a
// worker goroutine must be marshaled onto the UI thread by that
// implementation.
