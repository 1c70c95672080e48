package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/linkstash/linkstash/shares/models"
	"github.com/linkstash/linkstash/shares/repository"
)

// MockRepository is a test double for the share repository.
type MockRepository struct {
	mock.Mock
}

var _ repository.Repository = (*MockRepository)(nil)

func (m *MockRepository) FindByWorkspace(ctx context.Context, workspaceID string) ([]models.Share, error) {
	args := m.Called(ctx, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Share), args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id string) (*models.Share, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Share), args.Error(1)
}

func (m *MockRepository) FindByViewKey(ctx context.Context, viewKey string) (*models.Share, error) {
	args := m.Called(ctx, viewKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Share), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, share *models.Share) error {
	args := m.Called(ctx, share)
	return args.Error(0)
}

func (m *MockRepository) Update(ctx context.Context, id string, update *models.UpdateShareRequest) (*models.Share, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Share), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
