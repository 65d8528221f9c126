package rapidapi

import (
	"context"
	"net/http"
	"net/url"

	"media-relay/internal/domain"
)

// The conversion service serves a single bitrate.
const audioQuality = "128kbps"

// AudioClient converts a YouTube video id into an mp3 download link.
type AudioClient struct {
	key      string
	endpoint string
	http     *http.Client
}

func NewAudioClient(key string) *AudioClient {
	return &AudioClient{
		key:      key,
		endpoint: audioEndpoint,
		http:     &http.Client{Timeout: requestTimeout},
	}
}

type audioResponse struct {
	Link string `json:"link"`
	URL  string `json:"url"`
}

// AudioLink returns the mp3 option for videoID. found is false when the
// upstream replied 2xx without a link field, which is not an error.
func (c *AudioClient) AudioLink(ctx context.Context, videoID string) (opt domain.DownloadOption, found bool, err error) {
	q := url.Values{}
	q.Set("id", videoID)

	var body audioResponse
	if err := getJSON(ctx, c.http, c.key, c.endpoint, q, &body); err != nil {
		return domain.DownloadOption{}, false, err
	}

	link := body.Link
	if link == "" {
		link = body.URL
	}
	if link == "" {
		return domain.DownloadOption{}, false, nil
	}

	return domain.DownloadOption{
		Type:    domain.MediaMP3,
		Quality: audioQuality,
		URL:     link,
	}, true, nil
}
