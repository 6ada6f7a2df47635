package platform

import (
	"testing"
	"time"
)

func TestNewPlaylistPoller(t *testing.T) {
	poller := NewPlaylistPoller()
	if poller == nil {
		t.Fatal("poller should not be nil")
	}
	if poller.timeout != DefaultPollTimeout {
		t.Errorf("expected timeout %v, got %v", DefaultPollTimeout, poller.timeout)
	}

	poller.SetTimeout(30 * time.Second)
	if poller.timeout != 30*time.Second {
		t.Errorf("expected timeout %v, got %v", 30*time.Second, poller.timeout)
	}
}

func TestIsPlaylistURL(t *testing.T) {
	tests := []struct {
		url      string
		expected bool
	}{
		{"https://www.youtube.com/watch?v=VIDEO_ID&list=PLAYLIST_ID", true},
		{"https://www.youtube.com/playlist?list=PL123", true},
		{"https://www.youtube.com/watch?v=VIDEO_ID", false},
		{"", false},
	}

	for _, test := range tests {
		if result := IsPlaylistURL(test.url); result != test.expected {
			t.Errorf("IsPlaylistURL(%q) = %v, expected %v", test.url, result, test.expected)
		}
	}
}

func TestExtractPlaylistID(t *testing.T) {
	tests := []struct {
		url      string
		expected string
	}{
		{"https://www.youtube.com/playlist?list=PL123", "PL123"},
		{"https://www.youtube.com/watch?v=abc&list=PL456&index=2", "PL456"},
		{"https://www.youtube.com/watch?v=abc", ""},
		{"", ""},
	}

	for _, test := range tests {
		if result := ExtractPlaylistID(test.url); result != test.expected {
			t.Errorf("ExtractPlaylistID(%q) = %q, expected %q", test.url, result, test.expected)
		}
	}
}
