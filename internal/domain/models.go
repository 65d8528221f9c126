package domain

type Platform string

const (
	PlatformYouTube   Platform = "youtube"
	PlatformInstagram Platform = "instagram"
	PlatformNone      Platform = ""
)

type MediaType string

const (
	MediaMP4   MediaType = "mp4"
	MediaMP3   MediaType = "mp3"
	MediaImage MediaType = "image"
)

// DownloadOption is one downloadable rendition of the requested media.
type DownloadOption struct {
	Type    MediaType
	Quality string
	URL     string
	Note    string
}

// MediaResult aggregates everything gathered for one fetch: metadata,
// download options in upstream query order, and advisory diagnostics.
type MediaResult struct {
	Platform  Platform
	Title     string
	Thumbnail string
	Downloads []DownloadOption
	Info      string
}

// VideoMetadata is the no-credential metadata subset (oEmbed).
type VideoMetadata struct {
	Title     string
	Thumbnail string
}

// VideoLinks is the normalized reply of the video-link resolver. Title
// and Thumbnail are backfill values used only when the metadata lookup
// left them empty.
type VideoLinks struct {
	Title     string
	Thumbnail string
	Downloads []DownloadOption
}

// InstagramMedia is the normalized reply of the Instagram resolver.
type InstagramMedia struct {
	Title     string
	Thumbnail string
	Downloads []DownloadOption
}
