package models

import (
	"time"

	bookmarkmodels "github.com/linkstash/linkstash/bookmarks/models"
	collectionmodels "github.com/linkstash/linkstash/collections/models"
	spacemodels "github.com/linkstash/linkstash/spaces/models"
)

const DocumentVersion = "1.0"

const (
	UnknownSpaceName      = "Unknown Space"
	UnknownCollectionName = "Unknown Collection"
)

// ExportedCollection carries the parent space's name so the document can
// be imported into a tree where every id is regenerated.
type ExportedCollection struct {
	collectionmodels.Collection
	SpaceName string `json:"spaceName"`
}

// ExportedBookmark carries the parent collection's name for the same
// reason.
type ExportedBookmark struct {
	bookmarkmodels.Bookmark
	CollectionName string `json:"collectionName"`
}

// Document is the portable export format. Parent links are by name, not
// id; ids in the document are informational and discarded on import.
type Document struct {
	Spaces      []spacemodels.Space  `json:"spaces"`
	Collections []ExportedCollection `json:"collections"`
	Bookmarks   []ExportedBookmark   `json:"bookmarks"`
	ExportDate  time.Time            `json:"exportDate"`
	Version     string               `json:"version"`
}

type ImportRequest struct {
	WorkspaceID string    `json:"workspaceId"`
	ImportData  *Document `json:"importData"`
}

type ImportCounts struct {
	Spaces      int `json:"spaces"`
	Collections int `json:"collections"`
	Bookmarks   int `json:"bookmarks"`
}

type ImportResult struct {
	Message  string       `json:"message"`
	Imported ImportCounts `json:"imported"`
}
