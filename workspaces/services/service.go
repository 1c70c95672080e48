package services

import (
	"context"
	"fmt"
	"strings"

	apperrors "github.com/linkstash/linkstash/workspaces/errors"
	"github.com/linkstash/linkstash/workspaces/models"
	"github.com/linkstash/linkstash/workspaces/repository"
)

// Service defines workspace operations.
type Service interface {
	// GetWorkspace returns the workspace; ErrNotFound when absent.
	GetWorkspace(ctx context.Context, id string) (*models.Workspace, error)

	// EnsureWorkspace returns the workspace with the given id, creating it on
	// first visit. The second result reports whether a new row was created.
	EnsureWorkspace(ctx context.Context, id string) (*models.Workspace, bool, error)
}

type service struct {
	repo repository.Repository
}

// NewService constructs a workspace service.
func NewService(repo repository.Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetWorkspace(ctx context.Context, id string) (*models.Workspace, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: workspace id is required", apperrors.ErrInvalidRequest)
	}

	workspace, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}
	if workspace == nil {
		return nil, apperrors.ErrNotFound
	}

	return workspace, nil
}

func (s *service) EnsureWorkspace(ctx context.Context, id string) (*models.Workspace, bool, error) {
	if strings.TrimSpace(id) == "" {
		return nil, false, fmt.Errorf("%w: workspace id is required", apperrors.ErrInvalidRequest)
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}
	if existing != nil {
		return existing, false, nil
	}

	workspace := &models.Workspace{ID: id}
	if err := s.repo.Create(ctx, workspace); err != nil {
		return nil, false, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}

	return workspace, true, nil
}
