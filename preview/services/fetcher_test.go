package services

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/linkstash/linkstash/internal/cache"
	"github.com/linkstash/linkstash/internal/platform/config"
)

func testPreviewConfig() *config.PreviewConfig {
	return &config.PreviewConfig{
		Timeout:        5 * time.Second,
		UserAgent:      "Mozilla/5.0 (compatible; LinkstashBot/1.0)",
		MaxBodyBytes:   5 * 1024 * 1024,
		FaviconService: "https://favicons.example/s2/favicons",
	}
}

func htmlPage(head string) string {
	return "<html><head>" + head + "</head><body></body></html>"
}

func TestFetch(t *testing.T) {
	ctx := context.Background()

	t.Run("prefers open graph tags", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, htmlPage(`
				<title>Plain Title</title>
				<meta property="og:title" content="OG Title">
				<meta property="og:description" content="OG description">
				<meta property="og:image" content="https://cdn.example/og.png">
				<meta name="description" content="Plain description">
			`))
		}))
		defer server.Close()

		fetcher := NewFetcher(testPreviewConfig())
		preview := fetcher.Fetch(ctx, server.URL)

		require.Equal(t, "OG Title", preview.Title)
		require.Equal(t, "OG description", preview.Description)
		require.Equal(t, "https://cdn.example/og.png", preview.Image)
	})

	t.Run("falls back to twitter card tags", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, htmlPage(`
				<meta name="twitter:title" content="Twitter Title">
				<meta name="twitter:description" content="Twitter description">
				<meta name="twitter:image" content="https://cdn.example/card.png">
			`))
		}))
		defer server.Close()

		fetcher := NewFetcher(testPreviewConfig())
		preview := fetcher.Fetch(ctx, server.URL)

		require.Equal(t, "Twitter Title", preview.Title)
		require.Equal(t, "Twitter description", preview.Description)
		require.Equal(t, "https://cdn.example/card.png", preview.Image)
	})

	t.Run("falls back to title and meta description", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, htmlPage(`
				<title>  Plain Title  </title>
				<meta name="description" content="Plain description">
			`))
		}))
		defer server.Close()

		fetcher := NewFetcher(testPreviewConfig())
		preview := fetcher.Fetch(ctx, server.URL)

		require.Equal(t, "Plain Title", preview.Title)
		require.Equal(t, "Plain description", preview.Description)
		require.Contains(t, preview.Image, "favicons.example")
	})

	t.Run("resolves relative image urls against the page", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, htmlPage(`
				<meta property="og:title" content="Title">
				<meta property="og:image" content="/assets/og.png">
			`))
		}))
		defer server.Close()

		fetcher := NewFetcher(testPreviewConfig())
		preview := fetcher.Fetch(ctx, server.URL)

		require.Equal(t, server.URL+"/assets/og.png", preview.Image)
	})

	t.Run("403 degrades to favicon with restricted description", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		fetcher := NewFetcher(testPreviewConfig())
		preview := fetcher.Fetch(ctx, server.URL)

		require.Contains(t, strings.ToLower(preview.Description), "access restricted")
		require.Contains(t, preview.Image, "favicons.example")
		require.NotEmpty(t, preview.Title)
	})

	t.Run("429 degrades the same way", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		fetcher := NewFetcher(testPreviewConfig())
		preview := fetcher.Fetch(ctx, server.URL)

		require.Contains(t, strings.ToLower(preview.Description), "access restricted")
	})

	t.Run("network failure degrades to favicon fallback", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		serverURL := server.URL
		server.Close()

		fetcher := NewFetcher(testPreviewConfig())
		preview := fetcher.Fetch(ctx, serverURL)

		require.NotEmpty(t, preview.Title)
		require.Contains(t, preview.Image, "favicons.example")
	})

	t.Run("page without metadata degrades to favicon fallback", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, htmlPage(``))
		}))
		defer server.Close()

		fetcher := NewFetcher(testPreviewConfig())
		preview := fetcher.Fetch(ctx, server.URL)

		require.NotEmpty(t, preview.Title)
		require.Contains(t, preview.Image, "favicons.example")
	})

	t.Run("slow site is cut off by the timeout", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(500 * time.Millisecond)
		}))
		defer server.Close()

		cfg := testPreviewConfig()
		cfg.Timeout = 50 * time.Millisecond

		fetcher := NewFetcher(cfg)
		start := time.Now()
		preview := fetcher.Fetch(ctx, server.URL)

		require.Less(t, time.Since(start), 400*time.Millisecond)
		require.Contains(t, preview.Image, "favicons.example")
	})
}

func TestGetPreview(t *testing.T) {
	ctx := context.Background()

	t.Run("requires a url", func(t *testing.T) {
		svc := NewService(NewFetcher(testPreviewConfig()), nil, time.Minute)
		_, err := svc.GetPreview(ctx, " ")

		require.Error(t, err)
	})

	t.Run("serves repeat lookups from cache", func(t *testing.T) {
		hits := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits++
			fmt.Fprint(w, htmlPage(`<meta property="og:title" content="Cached Title">`))
		}))
		defer server.Close()

		cacheConfig := cache.DefaultCacheConfig()
		memCache, err := cache.NewCache(cacheConfig)
		require.NoError(t, err)
		defer memCache.Close()

		svc := NewService(NewFetcher(testPreviewConfig()), memCache, time.Minute)

		first, err := svc.GetPreview(ctx, server.URL)
		require.NoError(t, err)
		second, err := svc.GetPreview(ctx, server.URL)
		require.NoError(t, err)

		require.Equal(t, first, second)
		require.Equal(t, "Cached Title", second.Title)
		require.Equal(t, 1, hits)
	})
}
