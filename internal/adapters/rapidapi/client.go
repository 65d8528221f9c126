// Package rapidapi holds the credentialed upstream clients. All three
// share one API key sent via the X-RapidAPI-Key header; the host
// header is derived from the endpoint being called.
package rapidapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"media-relay/internal/domain"
)

const (
	videoEndpoint     = "https://ytstream-download-youtube-videos.p.rapidapi.com/dl"
	audioEndpoint     = "https://youtube-mp36.p.rapidapi.com/dl"
	instagramEndpoint = "https://instagram-downloader-download-instagram-videos-stories.p.rapidapi.com/index"
)

const requestTimeout = 20 * time.Second

// getJSON performs a credentialed GET against endpoint and decodes the
// JSON reply into out. A non-2xx reply becomes a
// domain.UpstreamStatusError so callers can report the code.
func getJSON(ctx context.Context, hc *http.Client, key, endpoint string, query url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("X-RapidAPI-Key", key)
	req.Header.Set("X-RapidAPI-Host", req.URL.Host)

	resp, err := hc.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.UpstreamStatusError{StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
