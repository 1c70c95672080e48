package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/linkstash/linkstash/spaces/models"
	"github.com/linkstash/linkstash/spaces/repository"
)

// MockRepository is a test double for the space repository.
type MockRepository struct {
	mock.Mock
}

var _ repository.Repository = (*MockRepository)(nil)

func (m *MockRepository) FindByWorkspace(ctx context.Context, workspaceID string) ([]models.Space, error) {
	args := m.Called(ctx, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Space), args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id string) (*models.Space, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Space), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, space *models.Space) error {
	args := m.Called(ctx, space)
	return args.Error(0)
}

func (m *MockRepository) Update(ctx context.Context, id string, update *models.UpdateSpaceRequest) (*models.Space, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Space), args.Error(1)
}

func (m *MockRepository) DeleteCascade(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) NextOrderIndex(ctx context.Context, workspaceID string) (int, error) {
	args := m.Called(ctx, workspaceID)
	return args.Int(0), args.Error(1)
}
