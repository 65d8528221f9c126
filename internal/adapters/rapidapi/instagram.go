package rapidapi

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"media-relay/internal/domain"
)

const instagramFallbackTitle = "Instagram Media"

// InstagramClient resolves download links for an Instagram post URL.
type InstagramClient struct {
	key      string
	endpoint string
	http     *http.Client
}

func NewInstagramClient(key string) *InstagramClient {
	return &InstagramClient{
		key:      key,
		endpoint: instagramEndpoint,
		http:     &http.Client{Timeout: requestTimeout},
	}
}

// Resolve fetches and normalizes the media list for postURL.
//
// Field fallbacks, in order:
//
//	thumbnail: thumbnail, display_url, thumb
//	media list: media, result, links (a single object counts as a
//	            one-element list)
//	entry link: url, link, video, image (entries with none are skipped)
//	quality:    quality, resolution
//
// An entry is classified mp4 when its type mentions "video" or its
// is_video flag is truthy, image otherwise.
func (c *InstagramClient) Resolve(ctx context.Context, postURL string) (domain.InstagramMedia, error) {
	q := url.Values{}
	q.Set("url", postURL)

	var body map[string]any
	if err := getJSON(ctx, c.http, c.key, c.endpoint, q, &body); err != nil {
		return domain.InstagramMedia{}, err
	}

	out := domain.InstagramMedia{
		Title:     firstString(body, "title"),
		Thumbnail: firstString(body, "thumbnail", "display_url", "thumb"),
	}
	if out.Title == "" {
		out.Title = instagramFallbackTitle
	}

	for _, entry := range mediaEntries(body) {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		link := firstString(m, "url", "link", "video", "image")
		if link == "" {
			continue
		}

		mediaType := domain.MediaImage
		entryType, _ := m["type"].(string)
		if strings.Contains(strings.ToLower(entryType), "video") || isTruthy(m["is_video"]) {
			mediaType = domain.MediaMP4
		}

		out.Downloads = append(out.Downloads, domain.DownloadOption{
			Type:    mediaType,
			Quality: firstString(m, "quality", "resolution"),
			URL:     link,
		})
	}
	return out, nil
}

// mediaEntries returns the first non-empty media container under the
// known aliases.
func mediaEntries(body map[string]any) []any {
	for _, key := range []string{"media", "result", "links"} {
		switch v := body[key].(type) {
		case []any:
			if len(v) > 0 {
				return v
			}
		case map[string]any:
			if len(v) > 0 {
				return []any{v}
			}
		}
	}
	return nil
}
