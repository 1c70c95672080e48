package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/linkstash/linkstash/collections/errors"
	"github.com/linkstash/linkstash/collections/models"
	"github.com/linkstash/linkstash/collections/repository"
)

func TestListCollections(t *testing.T) {
	ctx := context.Background()

	t.Run("passes filter through", func(t *testing.T) {
		mockRepo := new(MockRepository)
		filter := repository.ListFilter{SpaceID: "s1"}
		mockRepo.On("Find", ctx, filter).Return([]models.Collection{{ID: "c1"}}, nil).Once()

		svc := NewService(mockRepo)
		collections, err := svc.ListCollections(ctx, filter)

		require.NoError(t, err)
		require.Len(t, collections, 1)
		mockRepo.AssertExpectations(t)
	})

	t.Run("empty filter returns the full set", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("Find", ctx, repository.ListFilter{}).Return([]models.Collection{{ID: "c1"}, {ID: "c2"}}, nil).Once()

		svc := NewService(mockRepo)
		collections, err := svc.ListCollections(ctx, repository.ListFilter{})

		require.NoError(t, err)
		require.Len(t, collections, 2)
		mockRepo.AssertExpectations(t)
	})
}

func TestCreateCollection(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults view mode to grid", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("NextOrderIndex", ctx, "s1").Return(0, nil).Once()
		mockRepo.On("Create", ctx, mock.MatchedBy(func(c *models.Collection) bool {
			return c.ViewMode == models.ViewModeGrid && c.SpaceID == "s1"
		})).Return(nil).Once()

		svc := NewService(mockRepo)
		collection, err := svc.CreateCollection(ctx, &models.CreateCollectionRequest{SpaceID: "s1", Name: "Reading"})

		require.NoError(t, err)
		require.Equal(t, models.ViewModeGrid, collection.ViewMode)
		mockRepo.AssertExpectations(t)
	})

	t.Run("rejects unknown view mode", func(t *testing.T) {
		svc := NewService(new(MockRepository))
		_, err := svc.CreateCollection(ctx, &models.CreateCollectionRequest{
			SpaceID:  "s1",
			Name:     "Reading",
			ViewMode: "mosaic",
		})

		require.ErrorIs(t, err, apperrors.ErrInvalidRequest)
	})

	t.Run("requires spaceId", func(t *testing.T) {
		svc := NewService(new(MockRepository))
		_, err := svc.CreateCollection(ctx, &models.CreateCollectionRequest{Name: "Reading"})

		require.ErrorIs(t, err, apperrors.ErrInvalidRequest)
	})
}

func TestUpdateCollection(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects invalid view mode", func(t *testing.T) {
		bad := models.ViewMode("tiles")
		svc := NewService(new(MockRepository))
		_, err := svc.UpdateCollection(ctx, "c1", &models.UpdateCollectionRequest{ViewMode: &bad})

		require.ErrorIs(t, err, apperrors.ErrInvalidRequest)
	})

	t.Run("not found for missing row", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("Update", ctx, "missing", mock.Anything).Return(nil, nil).Once()

		svc := NewService(mockRepo)
		_, err := svc.UpdateCollection(ctx, "missing", &models.UpdateCollectionRequest{})

		require.ErrorIs(t, err, apperrors.ErrNotFound)
		mockRepo.AssertExpectations(t)
	})
}

func TestDeleteCollection(t *testing.T) {
	ctx := context.Background()

	t.Run("not found for missing row", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("DeleteCascade", ctx, "missing").Return(false, nil).Once()

		svc := NewService(mockRepo)
		err := svc.DeleteCollection(ctx, "missing")

		require.ErrorIs(t, err, apperrors.ErrNotFound)
		mockRepo.AssertExpectations(t)
	})
}
