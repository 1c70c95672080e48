package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	uuid "github.com/gofrs/uuid"
	"github.com/lib/pq"

	apperrors "github.com/linkstash/linkstash/bookmarks/errors"
	"github.com/linkstash/linkstash/bookmarks/models"
	"github.com/linkstash/linkstash/bookmarks/repository"
)

const defaultRecentLimit = 10

// Service defines bookmark operations.
type Service interface {
	// ListBookmarks returns bookmarks matching the filter, ordered by order
	// index then creation time.
	ListBookmarks(ctx context.Context, filter repository.ListFilter) ([]models.Bookmark, error)

	// GetBookmark returns a single bookmark; ErrNotFound when absent.
	GetBookmark(ctx context.Context, id string) (*models.Bookmark, error)

	// SearchBookmarks matches the query against title, description and url.
	SearchBookmarks(ctx context.Context, query string) ([]models.Bookmark, error)

	// ListPinned returns every pinned bookmark, most recently updated first.
	ListPinned(ctx context.Context) ([]models.Bookmark, error)

	// ListRecent returns the most recently updated bookmarks; limit <= 0
	// falls back to the default of 10.
	ListRecent(ctx context.Context, limit int) ([]models.Bookmark, error)

	// CreateBookmark creates a bookmark with a fresh id; order index
	// defaults to the current size of the collection (dense append).
	CreateBookmark(ctx context.Context, req *models.CreateBookmarkRequest) (*models.Bookmark, error)

	// UpdateBookmark applies the non-nil fields; ErrNotFound when absent.
	UpdateBookmark(ctx context.Context, id string, req *models.UpdateBookmarkRequest) (*models.Bookmark, error)

	// DeleteBookmark removes a bookmark; ErrNotFound when absent.
	DeleteBookmark(ctx context.Context, id string) error

	// ReorderBookmarks rewrites a collection's ordering to match the given
	// id sequence and returns the refreshed list. Ids outside the
	// collection fail validation before anything is written.
	ReorderBookmarks(ctx context.Context, req *models.ReorderRequest) ([]models.Bookmark, error)
}

type service struct {
	repo repository.Repository
}

// NewService constructs a bookmark service.
func NewService(repo repository.Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListBookmarks(ctx context.Context, filter repository.ListFilter) ([]models.Bookmark, error) {
	bookmarks, err := s.repo.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}

	return bookmarks, nil
}

func (s *service) GetBookmark(ctx context.Context, id string) (*models.Bookmark, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: bookmark id is required", apperrors.ErrInvalidRequest)
	}

	bookmark, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}
	if bookmark == nil {
		return nil, apperrors.ErrNotFound
	}

	return bookmark, nil
}

func (s *service) SearchBookmarks(ctx context.Context, query string) ([]models.Bookmark, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: search query is required", apperrors.ErrInvalidRequest)
	}

	bookmarks, err := s.repo.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}

	return bookmarks, nil
}

func (s *service) ListPinned(ctx context.Context) ([]models.Bookmark, error) {
	bookmarks, err := s.repo.FindPinned(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}

	return bookmarks, nil
}

func (s *service) ListRecent(ctx context.Context, limit int) ([]models.Bookmark, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	bookmarks, err := s.repo.FindRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}

	return bookmarks, nil
}

func (s *service) CreateBookmark(ctx context.Context, req *models.CreateBookmarkRequest) (*models.Bookmark, error) {
	if strings.TrimSpace(req.CollectionID) == "" {
		return nil, fmt.Errorf("%w: collectionId is required", apperrors.ErrInvalidRequest)
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", apperrors.ErrInvalidRequest)
	}
	if strings.TrimSpace(req.URL) == "" {
		return nil, fmt.Errorf("%w: url is required", apperrors.ErrInvalidRequest)
	}

	orderIndex := 0
	if req.OrderIndex != nil {
		orderIndex = *req.OrderIndex
	} else {
		count, err := s.repo.CountByCollection(ctx, req.CollectionID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
		}
		orderIndex = count
	}

	bookmark := &models.Bookmark{
		ID:           uuid.Must(uuid.NewV4()).String(),
		CollectionID: req.CollectionID,
		Title:        req.Title,
		URL:          req.URL,
		Description:  req.Description,
		Favicon:      req.Favicon,
		Tags:         pq.StringArray(req.Tags),
		IsPinned:     req.IsPinned,
		OrderIndex:   orderIndex,
	}
	if req.Preview != nil {
		bookmark.Preview = *req.Preview
	}

	if err := s.repo.Create(ctx, bookmark); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}

	return bookmark, nil
}

func (s *service) UpdateBookmark(ctx context.Context, id string, req *models.UpdateBookmarkRequest) (*models.Bookmark, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: bookmark id is required", apperrors.ErrInvalidRequest)
	}

	bookmark, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}
	if bookmark == nil {
		return nil, apperrors.ErrNotFound
	}

	return bookmark, nil
}

func (s *service) DeleteBookmark(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: bookmark id is required", apperrors.ErrInvalidRequest)
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}
	if !deleted {
		return apperrors.ErrNotFound
	}

	return nil
}

func (s *service) ReorderBookmarks(ctx context.Context, req *models.ReorderRequest) ([]models.Bookmark, error) {
	if strings.TrimSpace(req.CollectionID) == "" {
		return nil, fmt.Errorf("%w: collectionId is required", apperrors.ErrInvalidRequest)
	}
	if len(req.BookmarkIDs) == 0 {
		return nil, fmt.Errorf("%w: bookmarkIds is required", apperrors.ErrInvalidRequest)
	}

	seen := make(map[string]bool, len(req.BookmarkIDs))
	for _, id := range req.BookmarkIDs {
		if strings.TrimSpace(id) == "" {
			return nil, fmt.Errorf("%w: bookmarkIds must not contain empty ids", apperrors.ErrInvalidRequest)
		}
		if seen[id] {
			return nil, fmt.Errorf("%w: bookmarkIds must not contain duplicates", apperrors.ErrInvalidRequest)
		}
		seen[id] = true
	}

	if err := s.repo.Reorder(ctx, req.CollectionID, req.BookmarkIDs); err != nil {
		if errors.Is(err, repository.ErrForeignBookmarks) {
			return nil, fmt.Errorf("%w: bookmarkIds must all belong to the collection", apperrors.ErrInvalidRequest)
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}

	bookmarks, err := s.repo.Find(ctx, repository.ListFilter{CollectionID: req.CollectionID})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}

	return bookmarks, nil
}
