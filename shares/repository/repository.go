package repository

import (
	"context"

	"github.com/linkstash/linkstash/shares/models"
)

// Repository is the storage contract for shares. Lookups return
// (nil, nil) when no row matches; expiry is the service's concern.
type Repository interface {
	FindByWorkspace(ctx context.Context, workspaceID string) ([]models.Share, error)
	FindByID(ctx context.Context, id string) (*models.Share, error)
	FindByViewKey(ctx context.Context, viewKey string) (*models.Share, error)
	Create(ctx context.Context, share *models.Share) error
	Update(ctx context.Context, id string, update *models.UpdateShareRequest) (*models.Share, error)
	Delete(ctx context.Context, id string) (bool, error)
}
