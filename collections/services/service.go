package services

import (
	"context"
	"fmt"
	"strings"

	uuid "github.com/gofrs/uuid"

	apperrors "github.com/linkstash/linkstash/collections/errors"
	"github.com/linkstash/linkstash/collections/models"
	"github.com/linkstash/linkstash/collections/repository"
)

// Service defines collection operations.
type Service interface {
	// ListCollections returns collections matching the filter. An empty
	// filter intentionally returns the full table (dashboard counters rely
	// on the broad result).
	ListCollections(ctx context.Context, filter repository.ListFilter) ([]models.Collection, error)

	// CreateCollection creates a collection with a fresh id.
	CreateCollection(ctx context.Context, req *models.CreateCollectionRequest) (*models.Collection, error)

	// UpdateCollection applies the non-nil fields; ErrNotFound when absent.
	UpdateCollection(ctx context.Context, id string, req *models.UpdateCollectionRequest) (*models.Collection, error)

	// DeleteCollection removes the collection and its bookmarks.
	DeleteCollection(ctx context.Context, id string) error
}

type service struct {
	repo repository.Repository
}

// NewService constructs a collection service.
func NewService(repo repository.Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListCollections(ctx context.Context, filter repository.ListFilter) ([]models.Collection, error) {
	collections, err := s.repo.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}

	return collections, nil
}

func (s *service) CreateCollection(ctx context.Context, req *models.CreateCollectionRequest) (*models.Collection, error) {
	if strings.TrimSpace(req.SpaceID) == "" {
		return nil, fmt.Errorf("%w: spaceId is required", apperrors.ErrInvalidRequest)
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", apperrors.ErrInvalidRequest)
	}

	viewMode := req.ViewMode
	if viewMode == "" {
		viewMode = models.ViewModeGrid
	}
	if !viewMode.IsValid() {
		return nil, fmt.Errorf("%w: invalid viewMode %q", apperrors.ErrInvalidRequest, viewMode)
	}

	orderIndex := 0
	if req.OrderIndex != nil {
		orderIndex = *req.OrderIndex
	} else {
		next, err := s.repo.NextOrderIndex(ctx, req.SpaceID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
		}
		orderIndex = next
	}

	collection := &models.Collection{
		ID:          uuid.Must(uuid.NewV4()).String(),
		SpaceID:     req.SpaceID,
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		OrderIndex:  orderIndex,
		ViewMode:    viewMode,
	}

	if err := s.repo.Create(ctx, collection); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}

	return collection, nil
}

func (s *service) UpdateCollection(ctx context.Context, id string, req *models.UpdateCollectionRequest) (*models.Collection, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: collection id is required", apperrors.ErrInvalidRequest)
	}
	if req.ViewMode != nil && !req.ViewMode.IsValid() {
		return nil, fmt.Errorf("%w: invalid viewMode %q", apperrors.ErrInvalidRequest, *req.ViewMode)
	}

	collection, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}
	if collection == nil {
		return nil, apperrors.ErrNotFound
	}

	return collection, nil
}

func (s *service) DeleteCollection(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: collection id is required", apperrors.ErrInvalidRequest)
	}

	deleted, err := s.repo.DeleteCascade(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}
	if !deleted {
		return apperrors.ErrNotFound
	}

	return nil
}
