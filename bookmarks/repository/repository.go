package repository

import (
	"context"

	"github.com/linkstash/linkstash/bookmarks/models"
)

// ListFilter narrows Find. CollectionID takes precedence over SpaceID;
// with neither set the full table is returned.
type ListFilter struct {
	CollectionID string
	SpaceID      string
}

// Repository is the storage contract for bookmarks. Lookups return
// (nil, nil) when no row matches.
type Repository interface {
	Find(ctx context.Context, filter ListFilter) ([]models.Bookmark, error)
	FindByID(ctx context.Context, id string) (*models.Bookmark, error)
	Search(ctx context.Context, query string) ([]models.Bookmark, error)
	FindPinned(ctx context.Context) ([]models.Bookmark, error)
	FindRecent(ctx context.Context, limit int) ([]models.Bookmark, error)
	Create(ctx context.Context, bookmark *models.Bookmark) error
	Update(ctx context.Context, id string, update *models.UpdateBookmarkRequest) (*models.Bookmark, error)
	Delete(ctx context.Context, id string) (bool, error)
	// Reorder rewrites the order indexes of a collection to match ids.
	// Every id must belong to the collection; a membership mismatch is
	// reported via ErrForeignBookmarks and nothing is written.
	Reorder(ctx context.Context, collectionID string, ids []string) error
	CountByCollection(ctx context.Context, collectionID string) (int, error)
}
