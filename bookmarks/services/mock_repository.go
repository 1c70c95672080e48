package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/linkstash/linkstash/bookmarks/models"
	"github.com/linkstash/linkstash/bookmarks/repository"
)

// MockRepository is a test double for the bookmark repository.
type MockRepository struct {
	mock.Mock
}

var _ repository.Repository = (*MockRepository)(nil)

func (m *MockRepository) Find(ctx context.Context, filter repository.ListFilter) ([]models.Bookmark, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Bookmark), args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id string) (*models.Bookmark, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bookmark), args.Error(1)
}

func (m *MockRepository) Search(ctx context.Context, query string) ([]models.Bookmark, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Bookmark), args.Error(1)
}

func (m *MockRepository) FindPinned(ctx context.Context) ([]models.Bookmark, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Bookmark), args.Error(1)
}

func (m *MockRepository) FindRecent(ctx context.Context, limit int) ([]models.Bookmark, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Bookmark), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, bookmark *models.Bookmark) error {
	args := m.Called(ctx, bookmark)
	return args.Error(0)
}

func (m *MockRepository) Update(ctx context.Context, id string, update *models.UpdateBookmarkRequest) (*models.Bookmark, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bookmark), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) Reorder(ctx context.Context, collectionID string, ids []string) error {
	args := m.Called(ctx, collectionID, ids)
	return args.Error(0)
}

func (m *MockRepository) CountByCollection(ctx context.Context, collectionID string) (int, error) {
	args := m.Called(ctx, collectionID)
	return args.Int(0), args.Error(1)
}
