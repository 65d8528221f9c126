package rapidapi

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"media-relay/internal/domain"
)

// VideoClient resolves direct video download links for a YouTube
// video id.
type VideoClient struct {
	key      string
	endpoint string
	http     *http.Client
}

func NewVideoClient(key string) *VideoClient {
	return &VideoClient{
		key:      key,
		endpoint: videoEndpoint,
		http:     &http.Client{Timeout: requestTimeout},
	}
}

type videoFormat struct {
	URL          string `json:"url"`
	MimeType     string `json:"mimeType"`
	Quality      string `json:"quality"`
	QualityLabel string `json:"qualityLabel"`
}

type videoResponse struct {
	Title       string        `json:"title"`
	Thumbnail   string        `json:"thumbnail"`
	Formats     []videoFormat `json:"formats"`
	FormatsList []videoFormat `json:"formats_list"`
}

// VideoLinks fetches the format list for videoID and keeps the entries
// that carry a downloadable video payload, judged by an "mp4" marker in
// the URL or a video MIME type.
func (c *VideoClient) VideoLinks(ctx context.Context, videoID string) (domain.VideoLinks, error) {
	q := url.Values{}
	q.Set("id", videoID)

	var body videoResponse
	if err := getJSON(ctx, c.http, c.key, c.endpoint, q, &body); err != nil {
		return domain.VideoLinks{}, err
	}

	formats := body.Formats
	if len(formats) == 0 {
		formats = body.FormatsList
	}

	out := domain.VideoLinks{Title: body.Title, Thumbnail: body.Thumbnail}
	for _, f := range formats {
		if !strings.Contains(f.URL, "mp4") && !strings.Contains(f.MimeType, "video") {
			continue
		}
		quality := f.Quality
		if quality == "" {
			quality = f.QualityLabel
		}
		out.Downloads = append(out.Downloads, domain.DownloadOption{
			Type:    domain.MediaMP4,
			Quality: quality,
			URL:     f.URL,
		})
	}
	return out, nil
}
