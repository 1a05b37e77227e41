package domain_test

import (
	"testing"

	"go.trai.ch/carth/internal/core/domain"
)

func TestPlatform_Name(t *testing.T) {
	tests := []struct {
		platform domain.Platform
		want     string
	}{
		{domain.PlatformIOS, "iOS"},
		{domain.PlatformMac, "Mac"},
		{domain.PlatformTVOS, "tvOS"},
		{domain.PlatformWatchOS, "watchOS"},
		{domain.PlatformAll, "all"},
		{domain.Platform(42), "all"},
		{domain.Platform(-1), "all"},
	}

	for _, tt := range tests {
		if got := tt.platform.Name(); got != tt.want {
			t.Errorf("Platform(%d).Name() = %q, want %q", tt.platform, got, tt.want)
		}
	}
}

func TestParsePlatform_RoundTrip(t *testing.T) {
	for _, name := range []string{"iOS", "Mac", "tvOS", "watchOS", "all"} {
		if got := domain.ParsePlatform(name).Name(); got != name {
			t.Errorf("ParsePlatform(%q).Name() = %q", name, got)
		}
	}
}

func TestParsePlatform_UnknownMapsToAll(t *testing.T) {
	for _, name := range []string{"", "ios", "macOS", "linux"} {
		if got := domain.ParsePlatform(name); got != domain.PlatformAll {
			t.Errorf("ParsePlatform(%q) = %v, want PlatformAll", name, got)
		}
	}
}
