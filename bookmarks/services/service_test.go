package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/linkstash/linkstash/bookmarks/errors"
	"github.com/linkstash/linkstash/bookmarks/models"
	"github.com/linkstash/linkstash/bookmarks/repository"
)

func TestCreateBookmark(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults order index to collection size", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("CountByCollection", ctx, "c1").Return(3, nil).Once()
		mockRepo.On("Create", ctx, mock.MatchedBy(func(b *models.Bookmark) bool {
			return b.OrderIndex == 3 && b.CollectionID == "c1" && b.ID != ""
		})).Return(nil).Once()

		svc := NewService(mockRepo)
		bookmark, err := svc.CreateBookmark(ctx, &models.CreateBookmarkRequest{
			CollectionID: "c1",
			Title:        "Go blog",
			URL:          "https://go.dev/blog",
		})

		require.NoError(t, err)
		require.Equal(t, 3, bookmark.OrderIndex)
		mockRepo.AssertExpectations(t)
	})

	t.Run("honors explicit order index", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("Create", ctx, mock.MatchedBy(func(b *models.Bookmark) bool {
			return b.OrderIndex == 7
		})).Return(nil).Once()

		idx := 7
		svc := NewService(mockRepo)
		_, err := svc.CreateBookmark(ctx, &models.CreateBookmarkRequest{
			CollectionID: "c1",
			Title:        "Go blog",
			URL:          "https://go.dev/blog",
			OrderIndex:   &idx,
		})

		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("requires collectionId, title and url", func(t *testing.T) {
		svc := NewService(new(MockRepository))

		_, err := svc.CreateBookmark(ctx, &models.CreateBookmarkRequest{Title: "t", URL: "u"})
		require.ErrorIs(t, err, apperrors.ErrInvalidRequest)

		_, err = svc.CreateBookmark(ctx, &models.CreateBookmarkRequest{CollectionID: "c1", URL: "u"})
		require.ErrorIs(t, err, apperrors.ErrInvalidRequest)

		_, err = svc.CreateBookmark(ctx, &models.CreateBookmarkRequest{CollectionID: "c1", Title: "t"})
		require.ErrorIs(t, err, apperrors.ErrInvalidRequest)
	})
}

func TestGetBookmark(t *testing.T) {
	ctx := context.Background()

	t.Run("not found for missing row", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("FindByID", ctx, "missing").Return(nil, nil).Once()

		svc := NewService(mockRepo)
		_, err := svc.GetBookmark(ctx, "missing")

		require.ErrorIs(t, err, apperrors.ErrNotFound)
		mockRepo.AssertExpectations(t)
	})
}

func TestSearchBookmarks(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects empty query", func(t *testing.T) {
		svc := NewService(new(MockRepository))
		_, err := svc.SearchBookmarks(ctx, "   ")

		require.ErrorIs(t, err, apperrors.ErrInvalidRequest)
	})

	t.Run("passes query through", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("Search", ctx, "golang").Return([]models.Bookmark{{ID: "b1"}}, nil).Once()

		svc := NewService(mockRepo)
		bookmarks, err := svc.SearchBookmarks(ctx, "golang")

		require.NoError(t, err)
		require.Len(t, bookmarks, 1)
		mockRepo.AssertExpectations(t)
	})
}

func TestListRecent(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults limit to 10", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("FindRecent", ctx, 10).Return([]models.Bookmark{}, nil).Once()

		svc := NewService(mockRepo)
		_, err := svc.ListRecent(ctx, 0)

		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("honors explicit limit", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("FindRecent", ctx, 5).Return([]models.Bookmark{}, nil).Once()

		svc := NewService(mockRepo)
		_, err := svc.ListRecent(ctx, 5)

		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}

func TestReorderBookmarks(t *testing.T) {
	ctx := context.Background()

	t.Run("reorders and returns the fresh list", func(t *testing.T) {
		mockRepo := new(MockRepository)
		ids := []string{"b3", "b1", "b2"}
		mockRepo.On("Reorder", ctx, "c1", ids).Return(nil).Once()
		mockRepo.On("Find", ctx, repository.ListFilter{CollectionID: "c1"}).Return([]models.Bookmark{
			{ID: "b3", OrderIndex: 0},
			{ID: "b1", OrderIndex: 1},
			{ID: "b2", OrderIndex: 2},
		}, nil).Once()

		svc := NewService(mockRepo)
		bookmarks, err := svc.ReorderBookmarks(ctx, &models.ReorderRequest{
			CollectionID: "c1",
			BookmarkIDs:  ids,
		})

		require.NoError(t, err)
		require.Len(t, bookmarks, 3)
		for i, b := range bookmarks {
			require.Equal(t, i, b.OrderIndex)
		}
		require.Equal(t, "b3", bookmarks[0].ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("rejects ids outside the collection without refetching", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("Reorder", ctx, "c1", []string{"intruder"}).Return(repository.ErrForeignBookmarks).Once()

		svc := NewService(mockRepo)
		_, err := svc.ReorderBookmarks(ctx, &models.ReorderRequest{
			CollectionID: "c1",
			BookmarkIDs:  []string{"intruder"},
		})

		require.ErrorIs(t, err, apperrors.ErrInvalidRequest)
		mockRepo.AssertNotCalled(t, "Find", mock.Anything, mock.Anything)
		mockRepo.AssertExpectations(t)
	})

	t.Run("rejects duplicate ids", func(t *testing.T) {
		svc := NewService(new(MockRepository))
		_, err := svc.ReorderBookmarks(ctx, &models.ReorderRequest{
			CollectionID: "c1",
			BookmarkIDs:  []string{"b1", "b1"},
		})

		require.ErrorIs(t, err, apperrors.ErrInvalidRequest)
	})

	t.Run("rejects empty id list", func(t *testing.T) {
		svc := NewService(new(MockRepository))
		_, err := svc.ReorderBookmarks(ctx, &models.ReorderRequest{CollectionID: "c1"})

		require.ErrorIs(t, err, apperrors.ErrInvalidRequest)
	})
}

func TestDeleteBookmark(t *testing.T) {
	ctx := context.Background()

	t.Run("not found for missing row", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("Delete", ctx, "missing").Return(false, nil).Once()

		svc := NewService(mockRepo)
		err := svc.DeleteBookmark(ctx, "missing")

		require.ErrorIs(t, err, apperrors.ErrNotFound)
		mockRepo.AssertExpectations(t)
	})
}
