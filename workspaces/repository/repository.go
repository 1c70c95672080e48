package repository

import (
	"context"

	"github.com/linkstash/linkstash/workspaces/models"
)

// Repository defines data access for workspaces.
type Repository interface {
	// FindByID returns the workspace or nil when no row exists.
	FindByID(ctx context.Context, id string) (*models.Workspace, error)

	// Create inserts a new workspace row.
	Create(ctx context.Context, workspace *models.Workspace) error
}
