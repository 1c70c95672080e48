package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	uuid "github.com/gofrs/uuid"

	apperrors "github.com/linkstash/linkstash/shares/errors"
	"github.com/linkstash/linkstash/shares/models"
	"github.com/linkstash/linkstash/shares/repository"
)

const viewKeyBytes = 32

// Service defines share operations.
type Service interface {
	// ListShares returns the workspace's shares, newest first.
	ListShares(ctx context.Context, workspaceID string) ([]models.Share, error)

	// GetShare returns a share by id; ErrNotFound when absent.
	GetShare(ctx context.Context, id string) (*models.Share, error)

	// GetShareByViewKey resolves a view key. Expiry is checked at read
	// time, so an expired share is indistinguishable from a missing one.
	GetShareByViewKey(ctx context.Context, viewKey string) (*models.Share, error)

	// CreateShare creates a share with a fresh id and a server-generated
	// view key.
	CreateShare(ctx context.Context, req *models.CreateShareRequest) (*models.Share, error)

	// UpdateShare applies the non-nil fields; ErrNotFound when absent.
	UpdateShare(ctx context.Context, id string, req *models.UpdateShareRequest) (*models.Share, error)

	// DeleteShare removes a share; ErrNotFound when absent.
	DeleteShare(ctx context.Context, id string) error
}

type service struct {
	repo repository.Repository
	now  func() time.Time
}

// NewService constructs a share service.
func NewService(repo repository.Repository) Service {
	return &service{repo: repo, now: time.Now}
}

// NewServiceWithClock constructs a share service with an injected clock
// for expiry tests.
func NewServiceWithClock(repo repository.Repository, now func() time.Time) Service {
	return &service{repo: repo, now: now}
}

func newViewKey() (string, error) {
	key := make([]byte, viewKeyBytes)
	if _, err := rand.Read(key); err != nil {
		return "", fmt.Errorf("generate view key: %w", err)
	}
	return hex.EncodeToString(key), nil
}

func (s *service) ListShares(ctx context.Context, workspaceID string) ([]models.Share, error) {
	if strings.TrimSpace(workspaceID) == "" {
		return nil, fmt.Errorf("%w: workspaceId is required", apperrors.ErrInvalidRequest)
	}

	shares, err := s.repo.FindByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}

	return shares, nil
}

func (s *service) GetShare(ctx context.Context, id string) (*models.Share, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: share id is required", apperrors.ErrInvalidRequest)
	}

	share, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}
	if share == nil {
		return nil, apperrors.ErrNotFound
	}

	return share, nil
}

func (s *service) GetShareByViewKey(ctx context.Context, viewKey string) (*models.Share, error) {
	if strings.TrimSpace(viewKey) == "" {
		return nil, fmt.Errorf("%w: view key is required", apperrors.ErrInvalidRequest)
	}

	share, err := s.repo.FindByViewKey(ctx, viewKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}
	if share == nil || share.IsExpired(s.now()) {
		return nil, apperrors.ErrNotFound
	}

	return share, nil
}

func (s *service) CreateShare(ctx context.Context, req *models.CreateShareRequest) (*models.Share, error) {
	if strings.TrimSpace(req.WorkspaceID) == "" {
		return nil, fmt.Errorf("%w: workspaceId is required", apperrors.ErrInvalidRequest)
	}

	viewKey, err := newViewKey()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}

	share := &models.Share{
		ID:          uuid.Must(uuid.NewV4()).String(),
		WorkspaceID: req.WorkspaceID,
		ViewKey:     viewKey,
		Name:        req.Name,
		Description: req.Description,
		ExpiresAt:   req.ExpiresAt,
	}

	if err := s.repo.Create(ctx, share); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}

	return share, nil
}

func (s *service) UpdateShare(ctx context.Context, id string, req *models.UpdateShareRequest) (*models.Share, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: share id is required", apperrors.ErrInvalidRequest)
	}

	share, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}
	if share == nil {
		return nil, apperrors.ErrNotFound
	}

	return share, nil
}

func (s *service) DeleteShare(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: share id is required", apperrors.ErrInvalidRequest)
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}
	if !deleted {
		return apperrors.ErrNotFound
	}

	return nil
}
