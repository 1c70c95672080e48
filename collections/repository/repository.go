package repository

import (
	"context"

	"github.com/linkstash/linkstash/collections/models"
)

// ListFilter narrows a collection listing. With SpaceID set, only that
// space's collections are returned; otherwise WorkspaceID (when set) filters
// by joining through spaces. With neither set the full table is returned;
// dashboard counters depend on the unfiltered result.
type ListFilter struct {
	SpaceID     string
	WorkspaceID string
}

// Repository defines data access for collections.
type Repository interface {
	// Find returns collections matching the filter, ordered by order index.
	Find(ctx context.Context, filter ListFilter) ([]models.Collection, error)

	// FindByID returns the collection or nil when no row exists.
	FindByID(ctx context.Context, id string) (*models.Collection, error)

	// Create inserts a new collection row.
	Create(ctx context.Context, collection *models.Collection) error

	// Update applies the non-nil fields; returns nil when the row is missing.
	Update(ctx context.Context, id string, update *models.UpdateCollectionRequest) (*models.Collection, error)

	// DeleteCascade removes the collection and its bookmarks inside one
	// transaction; returns false when the collection is missing.
	DeleteCascade(ctx context.Context, id string) (bool, error)

	// NextOrderIndex returns the next dense order index within the space.
	NextOrderIndex(ctx context.Context, spaceID string) (int, error)
}
