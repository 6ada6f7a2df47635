package platform

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ytget/ytdlp/v2"
)

// Timeout constants
const (
	DefaultPollTimeout = 60 * time.Second
)

// URL parameters and separators
const (
	PlaylistParam  = "list="
	ParamSeparator = "&"
)

// URL templates
const (
	YouTubeVideoURLTemplate = "https://www.youtube.com/watch?v=%s"
)

// WatchItem is one video discovered in a watched playlist
type WatchItem struct {
	VideoID string
	Title   string
	URL     string
}

// PlaylistPoller lists the current contents of watched playlists using the
// ytdlp library. The scheduler polls through it to discover new uploads.
type PlaylistPoller struct {
	timeout time.Duration
}

// NewPlaylistPoller creates a new poller with the default timeout
func NewPlaylistPoller() *PlaylistPoller {
	return &PlaylistPoller{
		timeout: DefaultPollTimeout,
	}
}

// SetTimeout sets the timeout for poll operations
func (p *PlaylistPoller) SetTimeout(timeout time.Duration) {
	p.timeout = timeout
}

// Poll fetches the items of the playlist referenced by the URL
func (p *PlaylistPoller) Poll(ctx context.Context, url string) ([]WatchItem, error) {
	playlistID := ExtractPlaylistID(url)
	if playlistID == "" {
		return nil, fmt.Errorf("could not extract playlist ID from URL: %s", url)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	d := ytdlp.New()
	items, err := d.GetPlaylistItemsAll(ctx, playlistID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to get playlist items: %v", err)
	}

	result := make([]WatchItem, 0, len(items))
	for _, it := range items {
		result = append(result, WatchItem{
			VideoID: it.VideoID,
			Title:   it.Title,
			URL:     fmt.Sprintf(YouTubeVideoURLTemplate, it.VideoID),
		})
	}
	return result, nil
}

// IsPlaylistURL checks if the URL references a playlist
func IsPlaylistURL(url string) bool {
	return strings.Contains(url, PlaylistParam)
}

// ExtractPlaylistID extracts the playlist ID from various URL formats
func ExtractPlaylistID(url string) string {
	if !strings.Contains(url, PlaylistParam) {
		return ""
	}
	parts := strings.Split(url, PlaylistParam)
	if len(parts) < 2 {
		return ""
	}
	playlistPart := parts[1]
	if strings.Contains(playlistPart, ParamSeparator) {
		playlistPart = strings.Split(playlistPart, ParamSeparator)[0]
	}
	return playlistPart
}
