package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	bookmarkmodels "github.com/linkstash/linkstash/bookmarks/models"
	bookmarkrepo "github.com/linkstash/linkstash/bookmarks/repository"
	collectionmodels "github.com/linkstash/linkstash/collections/models"
	collectionrepo "github.com/linkstash/linkstash/collections/repository"
	spacemodels "github.com/linkstash/linkstash/spaces/models"
	apperrors "github.com/linkstash/linkstash/transfer/errors"
	"github.com/linkstash/linkstash/transfer/models"
)

// SpaceStore is the slice of the space service the transfer engine needs.
// The concrete space service satisfies it.
type SpaceStore interface {
	ListSpaces(ctx context.Context, workspaceID string) ([]spacemodels.Space, error)
	CreateSpace(ctx context.Context, req *spacemodels.CreateSpaceRequest) (*spacemodels.Space, error)
}

// CollectionStore is the slice of the collection service the transfer
// engine needs.
type CollectionStore interface {
	ListCollections(ctx context.Context, filter collectionrepo.ListFilter) ([]collectionmodels.Collection, error)
	CreateCollection(ctx context.Context, req *collectionmodels.CreateCollectionRequest) (*collectionmodels.Collection, error)
}

// BookmarkStore is the slice of the bookmark service the transfer engine
// needs.
type BookmarkStore interface {
	ListBookmarks(ctx context.Context, filter bookmarkrepo.ListFilter) ([]bookmarkmodels.Bookmark, error)
	CreateBookmark(ctx context.Context, req *bookmarkmodels.CreateBookmarkRequest) (*bookmarkmodels.Bookmark, error)
}

// Service defines the export/import operations.
type Service interface {
	// Export snapshots a workspace's tree into a portable document.
	Export(ctx context.Context, workspaceID string) (*models.Document, error)

	// Import recreates a document's tree under the workspace with fresh
	// ids, resolving parents by name against the entities created during
	// this import. Unresolvable or individually failing entries are
	// skipped; the counts reflect actual creations.
	Import(ctx context.Context, req *models.ImportRequest) (*models.ImportResult, error)
}

type service struct {
	spaces      SpaceStore
	collections CollectionStore
	bookmarks   BookmarkStore
}

// NewService constructs a transfer service over the three feature stores.
func NewService(spaces SpaceStore, collections CollectionStore, bookmarks BookmarkStore) Service {
	return &service{spaces: spaces, collections: collections, bookmarks: bookmarks}
}

func (s *service) Export(ctx context.Context, workspaceID string) (*models.Document, error) {
	if strings.TrimSpace(workspaceID) == "" {
		return nil, fmt.Errorf("%w: workspaceId is required", apperrors.ErrInvalidRequest)
	}

	spaces, err := s.spaces.ListSpaces(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}

	spaceNames := make(map[string]string, len(spaces))
	for _, sp := range spaces {
		spaceNames[sp.ID] = sp.Name
	}

	collections, err := s.collections.ListCollections(ctx, collectionrepo.ListFilter{WorkspaceID: workspaceID})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}

	collectionNames := make(map[string]string, len(collections))
	exportedCollections := make([]models.ExportedCollection, 0, len(collections))
	for _, col := range collections {
		collectionNames[col.ID] = col.Name
		spaceName, ok := spaceNames[col.SpaceID]
		if !ok {
			spaceName = models.UnknownSpaceName
		}
		exportedCollections = append(exportedCollections, models.ExportedCollection{Collection: col, SpaceName: spaceName})
	}

	exportedBookmarks := []models.ExportedBookmark{}
	for _, sp := range spaces {
		bookmarks, err := s.bookmarks.ListBookmarks(ctx, bookmarkrepo.ListFilter{SpaceID: sp.ID})
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
		}
		for _, bm := range bookmarks {
			collectionName, ok := collectionNames[bm.CollectionID]
			if !ok {
				collectionName = models.UnknownCollectionName
			}
			exportedBookmarks = append(exportedBookmarks, models.ExportedBookmark{Bookmark: bm, CollectionName: collectionName})
		}
	}

	return &models.Document{
		Spaces:      spaces,
		Collections: exportedCollections,
		Bookmarks:   exportedBookmarks,
		ExportDate:  time.Now().UTC(),
		Version:     models.DocumentVersion,
	}, nil
}

func (s *service) Import(ctx context.Context, req *models.ImportRequest) (*models.ImportResult, error) {
	if strings.TrimSpace(req.WorkspaceID) == "" {
		return nil, fmt.Errorf("%w: workspaceId is required", apperrors.ErrInvalidRequest)
	}
	doc := req.ImportData
	if doc == nil {
		return nil, fmt.Errorf("%w: importData is required", apperrors.ErrInvalidRequest)
	}
	if doc.Spaces == nil || doc.Collections == nil || doc.Bookmarks == nil {
		return nil, fmt.Errorf("%w: importData must contain spaces, collections and bookmarks arrays", apperrors.ErrInvalidRequest)
	}

	var counts models.ImportCounts

	// Parents are resolved by name against the entities created in this
	// import only; when names collide the first created entity wins.
	spaceIDsByName := make(map[string]string)
	for _, sp := range doc.Spaces {
		orderIndex := sp.OrderIndex
		created, err := s.spaces.CreateSpace(ctx, &spacemodels.CreateSpaceRequest{
			WorkspaceID: req.WorkspaceID,
			Name:        sp.Name,
			Description: sp.Description,
			Icon:        sp.Icon,
			OrderIndex:  &orderIndex,
		})
		if err != nil {
			continue
		}
		counts.Spaces++
		if _, exists := spaceIDsByName[sp.Name]; !exists {
			spaceIDsByName[sp.Name] = created.ID
		}
	}

	collectionIDsByName := make(map[string]string)
	for _, col := range doc.Collections {
		spaceID, ok := spaceIDsByName[col.SpaceName]
		if !ok {
			continue
		}
		orderIndex := col.OrderIndex
		created, err := s.collections.CreateCollection(ctx, &collectionmodels.CreateCollectionRequest{
			SpaceID:     spaceID,
			Name:        col.Name,
			Description: col.Description,
			Icon:        col.Icon,
			ViewMode:    col.ViewMode,
			OrderIndex:  &orderIndex,
		})
		if err != nil {
			continue
		}
		counts.Collections++
		if _, exists := collectionIDsByName[col.Name]; !exists {
			collectionIDsByName[col.Name] = created.ID
		}
	}

	for _, bm := range doc.Bookmarks {
		collectionID, ok := collectionIDsByName[bm.CollectionName]
		if !ok {
			continue
		}
		orderIndex := bm.OrderIndex
		preview := bm.Preview
		_, err := s.bookmarks.CreateBookmark(ctx, &bookmarkmodels.CreateBookmarkRequest{
			CollectionID: collectionID,
			Title:        bm.Title,
			URL:          bm.URL,
			Description:  bm.Description,
			Favicon:      bm.Favicon,
			Preview:      &preview,
			Tags:         bm.Tags,
			IsPinned:     bm.IsPinned,
			OrderIndex:   &orderIndex,
		})
		if err != nil {
			continue
		}
		counts.Bookmarks++
	}

	return &models.ImportResult{
		Message:  "Import completed",
		Imported: counts,
	}, nil
}
