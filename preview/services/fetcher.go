package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/linkstash/linkstash/internal/platform/config"
	"github.com/linkstash/linkstash/preview/models"
)

const restrictedDescription = "Preview unavailable: access restricted by the site"

// Fetcher scrapes link metadata from a page. It never returns an error;
// any failure degrades to a hostname title and a favicon-service image so
// the response keeps its shape.
type Fetcher struct {
	client         *http.Client
	userAgent      string
	maxBodyBytes   int64
	faviconService string
	timeout        time.Duration
}

// NewFetcher constructs a fetcher from the preview configuration.
func NewFetcher(cfg *config.PreviewConfig) *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				IdleConnTimeout:     90 * time.Second,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
		userAgent:      cfg.UserAgent,
		maxBodyBytes:   cfg.MaxBodyBytes,
		faviconService: cfg.FaviconService,
		timeout:        cfg.Timeout,
	}
}

func (f *Fetcher) setHeaders(r *http.Request) {
	r.Header.Set("User-Agent", f.userAgent)
	r.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	r.Header.Set("Accept-Language", "en-US,en;q=0.5")
}

func (f *Fetcher) faviconURL(host string) string {
	return fmt.Sprintf("%s?domain=%s&sz=64", f.faviconService, host)
}

func (f *Fetcher) fallback(host, description string) *models.LinkPreview {
	return &models.LinkPreview{
		Title:       host,
		Description: description,
		Image:       f.faviconURL(host),
	}
}

// Fetch retrieves and scrapes the page behind rawURL within the
// configured timeout.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) *models.LinkPreview {
	pageURL, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || pageURL.Host == "" {
		return &models.LinkPreview{Title: rawURL}
	}
	host := pageURL.Host

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL.String(), http.NoBody)
	if err != nil {
		return f.fallback(host, "")
	}
	f.setHeaders(req)

	res, err := f.client.Do(req)
	if err != nil {
		return f.fallback(host, "")
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusForbidden || res.StatusCode == http.StatusTooManyRequests:
		return f.fallback(host, restrictedDescription)
	case res.StatusCode < 200 || res.StatusCode >= 300:
		return f.fallback(host, "")
	}

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(res.Body, f.maxBodyBytes))
	if err != nil {
		return f.fallback(host, "")
	}

	preview := f.scrape(doc, pageURL)
	if preview.Title == "" && preview.Description == "" && preview.Image == "" {
		return f.fallback(host, "")
	}
	if preview.Title == "" {
		preview.Title = host
	}
	if preview.Image == "" {
		preview.Image = f.faviconURL(host)
	}

	return preview
}

func metaContent(doc *goquery.Document, selectors ...string) string {
	for _, selector := range selectors {
		if content := strings.TrimSpace(doc.Find(selector).AttrOr("content", "")); content != "" {
			return content
		}
	}
	return ""
}

// scrape walks the metadata fallback chain: Open Graph, then Twitter
// card, then plain title and description tags.
func (f *Fetcher) scrape(doc *goquery.Document, pageURL *url.URL) *models.LinkPreview {
	title := metaContent(doc,
		"meta[property='og:title']",
		"meta[name='twitter:title']",
	)
	if title == "" {
		title = strings.TrimSpace(doc.Find("title").First().Text())
	}

	description := metaContent(doc,
		"meta[property='og:description']",
		"meta[name='twitter:description']",
		"meta[name='description']",
	)

	image := metaContent(doc,
		"meta[property='og:image']",
		"meta[name='twitter:image']",
	)
	image = resolveImageURL(pageURL, image)

	return &models.LinkPreview{
		Title:       title,
		Description: description,
		Image:       image,
	}
}

// resolveImageURL turns relative image references into absolute URLs
// against the page they were scraped from.
func resolveImageURL(pageURL *url.URL, image string) string {
	if image == "" {
		return ""
	}

	parsed, err := url.Parse(image)
	if err != nil {
		return ""
	}
	if parsed.IsAbs() {
		return image
	}

	return pageURL.ResolveReference(parsed).String()
}
