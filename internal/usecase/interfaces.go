package usecase

import (
	"context"

	"media-relay/internal/domain"
)

type MetadataProvider interface {
	Lookup(ctx context.Context, videoURL string) (domain.VideoMetadata, error)
}

type VideoLinkProvider interface {
	VideoLinks(ctx context.Context, videoID string) (domain.VideoLinks, error)
}

type AudioLinkProvider interface {
	AudioLink(ctx context.Context, videoID string) (domain.DownloadOption, bool, error)
}

type InstagramResolver interface {
	Resolve(ctx context.Context, postURL string) (domain.InstagramMedia, error)
}

// FetchLog is the optional storage capability: it records successful
// fetches and backs the diagnostics endpoint.
type FetchLog interface {
	RecordFetch(ctx context.Context, platform domain.Platform, url string) error
	Ping(ctx context.Context) error
	Tables(ctx context.Context) ([]string, error)
}
