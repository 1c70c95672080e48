package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	bookmarkmodels "github.com/linkstash/linkstash/bookmarks/models"
	bookmarkrepo "github.com/linkstash/linkstash/bookmarks/repository"
	collectionmodels "github.com/linkstash/linkstash/collections/models"
	collectionrepo "github.com/linkstash/linkstash/collections/repository"
	spacemodels "github.com/linkstash/linkstash/spaces/models"
)

// MockSpaceStore is a test double for the space store.
type MockSpaceStore struct {
	mock.Mock
}

var _ SpaceStore = (*MockSpaceStore)(nil)

func (m *MockSpaceStore) ListSpaces(ctx context.Context, workspaceID string) ([]spacemodels.Space, error) {
	args := m.Called(ctx, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]spacemodels.Space), args.Error(1)
}

func (m *MockSpaceStore) CreateSpace(ctx context.Context, req *spacemodels.CreateSpaceRequest) (*spacemodels.Space, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*spacemodels.Space), args.Error(1)
}

// MockCollectionStore is a test double for the collection store.
type MockCollectionStore struct {
	mock.Mock
}

var _ CollectionStore = (*MockCollectionStore)(nil)

func (m *MockCollectionStore) ListCollections(ctx context.Context, filter collectionrepo.ListFilter) ([]collectionmodels.Collection, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]collectionmodels.Collection), args.Error(1)
}

func (m *MockCollectionStore) CreateCollection(ctx context.Context, req *collectionmodels.CreateCollectionRequest) (*collectionmodels.Collection, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*collectionmodels.Collection), args.Error(1)
}

// MockBookmarkStore is a test double for the bookmark store.
type MockBookmarkStore struct {
	mock.Mock
}

var _ BookmarkStore = (*MockBookmarkStore)(nil)

func (m *MockBookmarkStore) ListBookmarks(ctx context.Context, filter bookmarkrepo.ListFilter) ([]bookmarkmodels.Bookmark, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]bookmarkmodels.Bookmark), args.Error(1)
}

func (m *MockBookmarkStore) CreateBookmark(ctx context.Context, req *bookmarkmodels.CreateBookmarkRequest) (*bookmarkmodels.Bookmark, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bookmarkmodels.Bookmark), args.Error(1)
}
