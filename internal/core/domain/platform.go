package domain

// Platform is the target platform of the host project.
type Platform int

const (
	// PlatformAll is the wildcard used when no specific platform is configured.
	PlatformAll Platform = iota
	PlatformIOS
	PlatformMac
	PlatformTVOS
	PlatformWatchOS
)

// Name returns the platform name as carthage expects it on the command line.
// Every value outside the four known platforms maps to "all".
func (p Platform) Name() string {
	switch p {
	case PlatformIOS:
		return "iOS"
	case PlatformMac:
		return "Mac"
	case PlatformTVOS:
		return "tvOS"
	case PlatformWatchOS:
		return "watchOS"
	default:
		return "all"
	}
}

// ParsePlatform maps a configured platform name to a Platform.
// Unrecognized names map to PlatformAll rather than failing.
func ParsePlatform(s string) Platform {
	switch s {
	case "iOS":
		return PlatformIOS
	case "Mac":
		return PlatformMac
	case "tvOS":
		return PlatformTVOS
	case "watchOS":
		return PlatformWatchOS
	default:
		return PlatformAll
	}
}
