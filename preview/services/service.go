package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/linkstash/linkstash/internal/cache"
	apperrors "github.com/linkstash/linkstash/preview/errors"
	"github.com/linkstash/linkstash/preview/models"
)

const cacheKeyPrefix = "preview:"

// Service defines the link preview operation.
type Service interface {
	// GetPreview returns scraped metadata for the URL, served from cache
	// when a fresh entry exists.
	GetPreview(ctx context.Context, rawURL string) (*models.LinkPreview, error)
}

type service struct {
	fetcher *Fetcher
	cache   cache.Cache
	ttl     time.Duration
}

// NewService constructs a preview service. The cache may be nil, in which
// case every request hits the network.
func NewService(fetcher *Fetcher, previewCache cache.Cache, ttl time.Duration) Service {
	return &service{fetcher: fetcher, cache: previewCache, ttl: ttl}
}

func (s *service) GetPreview(ctx context.Context, rawURL string) (*models.LinkPreview, error) {
	if strings.TrimSpace(rawURL) == "" {
		return nil, fmt.Errorf("%w: url is required", apperrors.ErrInvalidRequest)
	}

	key := cacheKeyPrefix + rawURL

	if s.cache != nil {
		if data, err := s.cache.Get(ctx, key); err == nil {
			var preview models.LinkPreview
			if err := json.Unmarshal(data, &preview); err == nil {
				return &preview, nil
			}
		}
	}

	preview := s.fetcher.Fetch(ctx, rawURL)

	if s.cache != nil {
		if data, err := json.Marshal(preview); err == nil {
			_ = s.cache.Set(ctx, key, data, s.ttl)
		}
	}

	return preview, nil
}
