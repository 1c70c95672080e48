package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/linkstash/linkstash/collections/models"
	"github.com/linkstash/linkstash/collections/repository"
)

// MockRepository is a test double for the collection repository.
type MockRepository struct {
	mock.Mock
}

var _ repository.Repository = (*MockRepository)(nil)

func (m *MockRepository) Find(ctx context.Context, filter repository.ListFilter) ([]models.Collection, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Collection), args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id string) (*models.Collection, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Collection), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, collection *models.Collection) error {
	args := m.Called(ctx, collection)
	return args.Error(0)
}

func (m *MockRepository) Update(ctx context.Context, id string, update *models.UpdateCollectionRequest) (*models.Collection, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Collection), args.Error(1)
}

func (m *MockRepository) DeleteCascade(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) NextOrderIndex(ctx context.Context, spaceID string) (int, error) {
	args := m.Called(ctx, spaceID)
	return args.Int(0), args.Error(1)
}
