package platform

import (
	"regexp"

	"media-relay/internal/domain"
)

// The YouTube pattern accepts the watch, embed and shorts paths plus
// the youtu.be short link, with optional scheme and www./m. subdomain,
// and captures the 11-character video id. Instagram is any URL on
// instagram.com regardless of path.
var (
	youtubeRe   = regexp.MustCompile(`^(?:https?://)?(?:www\.|m\.)?(?:youtube\.com/(?:watch\?v=|embed/|shorts/)|youtu\.be/)([A-Za-z0-9_-]{11})`)
	instagramRe = regexp.MustCompile(`^(?:https?://)?(?:www\.)?instagram\.com/`)
)

// Detect classifies a raw URL by platform. URLs matching neither
// pattern map to PlatformNone, including near-misses such as a
// 10-character video id.
func Detect(rawURL string) domain.Platform {
	switch {
	case youtubeRe.MatchString(rawURL):
		return domain.PlatformYouTube
	case instagramRe.MatchString(rawURL):
		return domain.PlatformInstagram
	default:
		return domain.PlatformNone
	}
}

// ExtractVideoID returns the 11-character video id embedded in a
// YouTube URL.
func ExtractVideoID(rawURL string) (string, bool) {
	m := youtubeRe.FindStringSubmatch(rawURL)
	if len(m) < 2 {
		return "", false
	}
	return m[1], true
}
