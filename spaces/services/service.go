package services

import (
	"context"
	"fmt"
	"strings"

	uuid "github.com/gofrs/uuid"

	apperrors "github.com/linkstash/linkstash/spaces/errors"
	"github.com/linkstash/linkstash/spaces/models"
	"github.com/linkstash/linkstash/spaces/repository"
)

// Service defines space operations.
type Service interface {
	// ListSpaces returns the workspace's spaces ordered by order index.
	ListSpaces(ctx context.Context, workspaceID string) ([]models.Space, error)

	// CreateSpace creates a space with a fresh id; order index defaults to the
	// next dense value within the workspace.
	CreateSpace(ctx context.Context, req *models.CreateSpaceRequest) (*models.Space, error)

	// UpdateSpace applies the non-nil fields; ErrNotFound when absent.
	UpdateSpace(ctx context.Context, id string, req *models.UpdateSpaceRequest) (*models.Space, error)

	// DeleteSpace removes the space and cascades to its collections and
	// bookmarks; ErrNotFound when absent.
	DeleteSpace(ctx context.Context, id string) error
}

type service struct {
	repo repository.Repository
}

// NewService constructs a space service.
func NewService(repo repository.Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListSpaces(ctx context.Context, workspaceID string) ([]models.Space, error) {
	if strings.TrimSpace(workspaceID) == "" {
		return nil, fmt.Errorf("%w: workspaceId is required", apperrors.ErrInvalidRequest)
	}

	spaces, err := s.repo.FindByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}

	return spaces, nil
}

func (s *service) CreateSpace(ctx context.Context, req *models.CreateSpaceRequest) (*models.Space, error) {
	if strings.TrimSpace(req.WorkspaceID) == "" {
		return nil, fmt.Errorf("%w: workspaceId is required", apperrors.ErrInvalidRequest)
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", apperrors.ErrInvalidRequest)
	}

	orderIndex := 0
	if req.OrderIndex != nil {
		orderIndex = *req.OrderIndex
	} else {
		next, err := s.repo.NextOrderIndex(ctx, req.WorkspaceID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
		}
		orderIndex = next
	}

	space := &models.Space{
		ID:          uuid.Must(uuid.NewV4()).String(),
		WorkspaceID: req.WorkspaceID,
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		OrderIndex:  orderIndex,
	}

	if err := s.repo.Create(ctx, space); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}

	return space, nil
}

func (s *service) UpdateSpace(ctx context.Context, id string, req *models.UpdateSpaceRequest) (*models.Space, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: space id is required", apperrors.ErrInvalidRequest)
	}

	space, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}
	if space == nil {
		return nil, apperrors.ErrNotFound
	}

	return space, nil
}

func (s *service) DeleteSpace(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: space id is required", apperrors.ErrInvalidRequest)
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
