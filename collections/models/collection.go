package models

import "time"

// ViewMode is the persisted per-collection display preference.
type ViewMode string

const (
	ViewModeGrid    ViewMode = "grid"
	ViewModeGrid2   ViewMode = "grid2"
	ViewModeList    ViewMode = "list"
	ViewModeCompact ViewMode = "compact"
)

// IsValid reports whether the view mode names a known display mode.
func (v ViewMode) IsValid() bool {
	switch v {
	case ViewModeGrid, ViewModeGrid2, ViewModeList, ViewModeCompact:
		return true
	}
	return false
}

// Collection is a named grouping of bookmarks within a space.
type Collection struct {
	ID          string    `json:"id" db:"id"`
	SpaceID     string    `json:"spaceId" db:"space_id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Icon        string    `json:"icon" db:"icon"`
	OrderIndex  int       `json:"orderIndex" db:"order_index"`
	ViewMode    ViewMode  `json:"viewMode" db:"view_mode"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// CreateCollectionRequest is the payload for POST /collections
type CreateCollectionRequest struct {
	SpaceID     string   `json:"spaceId"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	OrderIndex  *int     `json:"orderIndex"`
	ViewMode    ViewMode `json:"viewMode"`
}

// UpdateCollectionRequest carries a partial update; nil fields are left untouched.
type UpdateCollectionRequest struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Icon        *string   `json:"icon"`
	OrderIndex  *int      `json:"orderIndex"`
	ViewMode    *ViewMode `json:"viewMode"`
}
