package platform

// Package platform contains OS/platform integration and external tooling
// glue: filesystem helpers, batch list parsing, playlist polling via the
// ytdlp library, and opening the clips directory in the host OS.
