package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"

	"media-relay/internal/domain"
	"media-relay/internal/platform"
)

// Diagnostic strings are kept short for readability.
const infoLimit = 120

// Service classifies incoming URLs and relays them to the upstream
// resolvers. The credentialed providers and the fetch log are optional:
// a nil provider means the capability is not configured.
type Service struct {
	metadata  MetadataProvider
	video     VideoLinkProvider
	audio     AudioLinkProvider
	instagram InstagramResolver
	store     FetchLog
}

type Dependencies struct {
	Metadata  MetadataProvider
	Video     VideoLinkProvider
	Audio     AudioLinkProvider
	Instagram InstagramResolver
	Store     FetchLog
}

func NewService(deps Dependencies) *Service {
	return &Service{
		metadata:  deps.Metadata,
		video:     deps.Video,
		audio:     deps.Audio,
		instagram: deps.Instagram,
		store:     deps.Store,
	}
}

// Analyze classifies rawURL without contacting any upstream.
func (s *Service) Analyze(rawURL string) (domain.Platform, error) {
	if !validURL(rawURL) {
		return domain.PlatformNone, ErrInvalidURL
	}
	return platform.Detect(rawURL), nil
}

// Fetch resolves rawURL into metadata and download options. Upstream
// failures never fail the call: they are folded into the result's Info
// field. The only errors returned are the client-input kind.
func (s *Service) Fetch(ctx context.Context, rawURL string) (domain.MediaResult, error) {
	if !validURL(rawURL) {
		return domain.MediaResult{}, ErrInvalidURL
	}

	var (
		res domain.MediaResult
		err error
	)
	switch platform.Detect(rawURL) {
	case domain.PlatformYouTube:
		res, err = s.fetchYouTube(ctx, rawURL)
	case domain.PlatformInstagram:
		res, err = s.fetchInstagram(ctx, rawURL)
	default:
		return domain.MediaResult{}, ErrUnsupportedPlatform
	}
	if err != nil {
		return domain.MediaResult{}, err
	}

	if s.store != nil {
		if logErr := s.store.RecordFetch(ctx, res.Platform, rawURL); logErr != nil {
			log.Printf("fetch log: %v", logErr)
		}
	}
	return res, nil
}

func (s *Service) fetchYouTube(ctx context.Context, rawURL string) (domain.MediaResult, error) {
	videoID, ok := platform.ExtractVideoID(rawURL)
	if !ok {
		return domain.MediaResult{}, ErrVideoIDParse
	}

	res := domain.MediaResult{Platform: domain.PlatformYouTube}

	// Metadata is best-effort and independent of the link fetchers.
	if s.metadata != nil {
		if meta, err := s.metadata.Lookup(ctx, rawURL); err == nil {
			res.Title = meta.Title
			res.Thumbnail = meta.Thumbnail
		}
	}

	if s.video == nil && s.audio == nil {
		res.Info = "RAPIDAPI_KEY not set. Showing metadata only."
		return res, nil
	}

	if s.video != nil {
		links, err := s.video.VideoLinks(ctx, videoID)
		if err != nil {
			appendInfo(&res.Info, upstreamFailure("RapidAPI YouTube", err))
		} else {
			if res.Title == "" {
				res.Title = links.Title
			}
			if res.Thumbnail == "" {
				res.Thumbnail = links.Thumbnail
			}
			res.Downloads = append(res.Downloads, links.Downloads...)
		}
	}

	if s.audio != nil {
		opt, found, err := s.audio.AudioLink(ctx, videoID)
		switch {
		case err != nil:
			appendInfo(&res.Info, upstreamFailure("MP3", err))
		case found:
			res.Downloads = append(res.Downloads, opt)
		}
	}

	return res, nil
}

func (s *Service) fetchInstagram(ctx context.Context, rawURL string) (domain.MediaResult, error) {
	res := domain.MediaResult{Platform: domain.PlatformInstagram}

	if s.instagram == nil {
		res.Info = "RAPIDAPI_KEY not set. Unable to generate Instagram download links."
		return res, nil
	}

	media, err := s.instagram.Resolve(ctx, rawURL)
	if err != nil {
		appendInfo(&res.Info, upstreamFailure("RapidAPI Instagram", err))
		return res, nil
	}

	res.Title = media.Title
	res.Thumbnail = media.Thumbnail
	res.Downloads = media.Downloads
	return res, nil
}

// upstreamFailure renders an upstream error as an advisory diagnostic:
// non-2xx replies report the status code, everything else the
// truncated error text.
func upstreamFailure(label string, err error) string {
	var statusErr domain.UpstreamStatusError
	if errors.As(err, &statusErr) {
		return fmt.Sprintf("%s fetch failed: %d", label, statusErr.StatusCode)
	}
	return label + " error: " + truncate(err.Error(), infoLimit)
}

func appendInfo(info *string, msg string) {
	if *info != "" {
		*info += "; "
	}
	*info += msg
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}

func validURL(raw string) bool {
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
