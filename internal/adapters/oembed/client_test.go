package oembed

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"media-relay/internal/domain"
)

func TestLookup_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("url"); got != "https://youtu.be/dQw4w9WgXcQ" {
			t.Errorf("unexpected url param: %q", got)
		}
		if got := r.URL.Query().Get("format"); got != "json" {
			t.Errorf("unexpected format param: %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"title":"Some Video","thumbnail_url":"https://i.ytimg.com/vi/dQw4w9WgXcQ/hqdefault.jpg"}`))
	}))
	defer srv.Close()

	c := &Client{endpoint: srv.URL, http: srv.Client()}
	meta, err := c.Lookup(context.Background(), "https://youtu.be/dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if meta.Title != "Some Video" {
		t.Errorf("title = %q", meta.Title)
	}
	if meta.Thumbnail != "https://i.ytimg.com/vi/dQw4w9WgXcQ/hqdefault.jpg" {
		t.Errorf("thumbnail = %q", meta.Thumbnail)
	}
}

func TestLookup_NonOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := &Client{endpoint: srv.URL, http: srv.Client()}
	_, err := c.Lookup(context.Background(), "https://youtu.be/dQw4w9WgXcQ")

	var statusErr domain.UpstreamStatusError
	if !errors.As(err, &statusErr) || statusErr.StatusCode != http.StatusNotFound {
		t.Fatalf("expected UpstreamStatusError 404, got %v", err)
	}
}
