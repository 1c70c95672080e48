package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/linkstash/linkstash/workspaces/models"
	"github.com/linkstash/linkstash/workspaces/repository"
)

// MockRepository is a test double for the workspace repository.
type MockRepository struct {
	mock.Mock
}

var _ repository.Repository = (*MockRepository)(nil)

func (m *MockRepository) FindByID(ctx context.Context, id string) (*models.Workspace, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Workspace), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, workspace *models.Workspace) error {
	args := m.Called(ctx, workspace)
	return args.Error(0)
}
