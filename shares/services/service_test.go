package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/linkstash/linkstash/shares/errors"
	"github.com/linkstash/linkstash/shares/models"
)

func TestCreateShare(t *testing.T) {
	ctx := context.Background()

	t.Run("generates a 64 hex char view key", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("Create", ctx, mock.MatchedBy(func(s *models.Share) bool {
			return len(s.ViewKey) == 64 && s.ID != ""
		})).Return(nil).Once()

		svc := NewService(mockRepo)
		share, err := svc.CreateShare(ctx, &models.CreateShareRequest{WorkspaceID: "w1", Name: "team"})

		require.NoError(t, err)
		require.Len(t, share.ViewKey, 64)
		mockRepo.AssertExpectations(t)
	})

	t.Run("view keys differ between shares", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("Create", ctx, mock.Anything).Return(nil).Twice()

		svc := NewService(mockRepo)
		first, err := svc.CreateShare(ctx, &models.CreateShareRequest{WorkspaceID: "w1"})
		require.NoError(t, err)
		second, err := svc.CreateShare(ctx, &models.CreateShareRequest{WorkspaceID: "w1"})
		require.NoError(t, err)

		require.NotEqual(t, first.ViewKey, second.ViewKey)
	})

	t.Run("requires workspaceId", func(t *testing.T) {
		svc := NewService(new(MockRepository))
		_, err := svc.CreateShare(ctx, &models.CreateShareRequest{})

		require.ErrorIs(t, err, apperrors.ErrInvalidRequest)
	})
}

func TestGetShareByViewKey(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	t.Run("returns a live share", func(t *testing.T) {
		future := now.Add(24 * time.Hour)
		mockRepo := new(MockRepository)
		mockRepo.On("FindByViewKey", ctx, "key").Return(&models.Share{ID: "s1", ViewKey: "key", ExpiresAt: &future}, nil).Once()

		svc := NewServiceWithClock(mockRepo, func() time.Time { return now })
		share, err := svc.GetShareByViewKey(ctx, "key")

		require.NoError(t, err)
		require.Equal(t, "s1", share.ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("expired share reads as not found", func(t *testing.T) {
		past := now.Add(-time.Minute)
		mockRepo := new(MockRepository)
		mockRepo.On("FindByViewKey", ctx, "key").Return(&models.Share{ID: "s1", ViewKey: "key", ExpiresAt: &past}, nil).Once()

		svc := NewServiceWithClock(mockRepo, func() time.Time { return now })
		_, err := svc.GetShareByViewKey(ctx, "key")

		require.ErrorIs(t, err, apperrors.ErrNotFound)
		mockRepo.AssertExpectations(t)
	})

	t.Run("share without expiry never expires", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("FindByViewKey", ctx, "key").Return(&models.Share{ID: "s1", ViewKey: "key"}, nil).Once()

		svc := NewServiceWithClock(mockRepo, func() time.Time { return now })
		share, err := svc.GetShareByViewKey(ctx, "key")

		require.NoError(t, err)
		require.Equal(t, "s1", share.ID)
	})

	t.Run("missing key reads as not found", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("FindByViewKey", ctx, "missing").Return(nil, nil).Once()

		svc := NewService(mockRepo)
		_, err := svc.GetShareByViewKey(ctx, "missing")

		require.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestListShares(t *testing.T) {
	ctx := context.Background()

	t.Run("requires workspaceId", func(t *testing.T) {
		svc := NewService(new(MockRepository))
		_, err := svc.ListShares(ctx, "")

		require.ErrorIs(t, err, apperrors.ErrInvalidRequest)
	})
}

func TestDeleteShare(t *testing.T) {
	ctx := context.Background()

	t.Run("not found for missing row", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("Delete", ctx, "missing").Return(false, nil).Once()

		svc := NewService(mockRepo)
		err := svc.DeleteShare(ctx, "missing")

		require.ErrorIs(t, err, apperrors.ErrNotFound)
		mockRepo.AssertExpectations(t)
	})
}
