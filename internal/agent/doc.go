package agent

// Package agent implements the video-repurposing agent consumed by the UI.
// The UI depends only on the Agent interface; the default implementation
// loads its configuration from a YAML file, fetches remote sources via the
// yt-dlp CLI, plans highlight windows, cuts clips with ffmpeg, and runs an
// interval scheduler that watches configured playlists for new uploads.
