package oembed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"media-relay/internal/domain"
)

const defaultEndpoint = "https://www.youtube.com/oembed"

const lookupTimeout = 10 * time.Second

// Client fetches video metadata from the public oEmbed endpoint. No
// credential is required.
type Client struct {
	endpoint string
	http     *http.Client
}

func NewClient() *Client {
	return &Client{
		endpoint: defaultEndpoint,
		http:     &http.Client{Timeout: lookupTimeout},
	}
}

type oembedResponse struct {
	Title        string `json:"title"`
	ThumbnailURL string `json:"thumbnail_url"`
}

// Lookup returns title and thumbnail for the given video URL.
func (c *Client) Lookup(ctx context.Context, videoURL string) (domain.VideoMetadata, error) {
	q := url.Values{}
	q.Set("url", videoURL)
	q.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return domain.VideoMetadata{}, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.VideoMetadata{}, fmt.Errorf("oembed request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.VideoMetadata{}, domain.UpstreamStatusError{StatusCode: resp.StatusCode}
	}

	var body oembedResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.VideoMetadata{}, fmt.Errorf("decode oembed response: %w", err)
	}

	return domain.VideoMetadata{Title: body.Title, Thumbnail: body.ThumbnailURL}, nil
}
