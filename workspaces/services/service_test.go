package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/linkstash/linkstash/workspaces/errors"
	"github.com/linkstash/linkstash/workspaces/models"
)

func TestGetWorkspace(t *testing.T) {
	ctx := context.Background()

	t.Run("returns existing workspace", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("FindByID", ctx, "w1").Return(&models.Workspace{ID: "w1"}, nil).Once()

		svc := NewService(mockRepo)
		workspace, err := svc.GetWorkspace(ctx, "w1")

		require.NoError(t, err)
		require.Equal(t, "w1", workspace.ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("not found for missing row", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("FindByID", ctx, "missing").Return(nil, nil).Once()

		svc := NewService(mockRepo)
		_, err := svc.GetWorkspace(ctx, "missing")

		require.ErrorIs(t, err, apperrors.ErrNotFound)
		mockRepo.AssertExpectations(t)
	})

	t.Run("rejects empty id", func(t *testing.T) {
		svc := NewService(new(MockRepository))
		_, err := svc.GetWorkspace(ctx, "  ")

		require.ErrorIs(t, err, apperrors.ErrInvalidRequest)
	})

	t.Run("wraps storage errors", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("FindByID", ctx, "w1").Return(nil, errors.New("db down")).Once()

		svc := NewService(mockRepo)
		_, err := svc.GetWorkspace(ctx, "w1")

		require.ErrorIs(t, err, apperrors.ErrStorage)
		mockRepo.AssertExpectations(t)
	})
}

func TestEnsureWorkspace(t *testing.T) {
	ctx := context.Background()

	t.Run("returns existing workspace without creating", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("FindByID", ctx, "w1").Return(&models.Workspace{ID: "w1"}, nil).Once()

		svc := NewService(mockRepo)
		workspace, created, err := svc.EnsureWorkspace(ctx, "w1")

		require.NoError(t, err)
		require.False(t, created)
		require.Equal(t, "w1", workspace.ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("creates workspace on first visit", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("FindByID", ctx, "fresh").Return(nil, nil).Once()
		mockRepo.On("Create", ctx, mock.MatchedBy(func(w *models.Workspace) bool {
			return w.ID == "fresh"
		})).Return(nil).Once()

		svc := NewService(mockRepo)
		workspace, created, err := svc.EnsureWorkspace(ctx, "fresh")

		require.NoError(t, err)
		require.True(t, created)
		require.Equal(t, "fresh", workspace.ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("wraps create failures", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("FindByID", ctx, "fresh").Return(nil, nil).Once()
		mockRepo.On("Create", ctx, mock.Anything).Return(errors.New("insert failed")).Once()

		svc := NewService(mockRepo)
		_, _, err := svc.EnsureWorkspace(ctx, "fresh")

		require.ErrorIs(t, err, apperrors.ErrStorage)
		mockRepo.AssertExpectations(t)
	})
}
