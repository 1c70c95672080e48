package repository

import (
	"context"

	"github.com/linkstash/linkstash/spaces/models"
)

// Repository defines data access for spaces.
type Repository interface {
	// FindByWorkspace returns the workspace's spaces ordered by order index.
	FindByWorkspace(ctx context.Context, workspaceID string) ([]models.Space, error)

	// FindByID returns the space or nil when no row exists.
	FindByID(ctx context.Context, id string) (*models.Space, error)

	// Create inserts a new space row.
	Create(ctx context.Context, space *models.Space) error

	// Update applies the non-nil fields; returns nil when the row is missing.
	Update(ctx context.Context, id string, update *models.UpdateSpaceRequest) (*models.Space, error)

	// DeleteCascade removes the space together with its collections and their
	// bookmarks inside one transaction; returns false when the space is missing.
	DeleteCascade(ctx context.Context, id string) (bool, error)

	// NextOrderIndex returns the next dense order index within the workspace.
	NextOrderIndex(ctx context.Context, workspaceID string) (int, error)
}
