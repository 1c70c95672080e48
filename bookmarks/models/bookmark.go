package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"
)

// Preview holds scraped link metadata. It is stored as a JSONB column, so
// it implements driver.Valuer and sql.Scanner itself.
type Preview struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

func (p Preview) Value() (driver.Value, error) {
	return json.Marshal(p)
}

func (p *Preview) Scan(src interface{}) error {
	if src == nil {
		*p = Preview{}
		return nil
	}

	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	default:
		return fmt.Errorf("unsupported preview column type %T", src)
	}
}

type Bookmark struct {
	ID           string         `json:"id" db:"id"`
	CollectionID string         `json:"collectionId" db:"collection_id"`
	Title        string         `json:"title" db:"title"`
	URL          string         `json:"url" db:"url"`
	Description  string         `json:"description,omitempty" db:"description"`
	Favicon      string         `json:"favicon,omitempty" db:"favicon"`
	Preview      Preview        `json:"preview" db:"preview"`
	Tags         pq.StringArray `json:"tags" db:"tags"`
	IsPinned     bool           `json:"isPinned" db:"is_pinned"`
	OrderIndex   int            `json:"orderIndex" db:"order_index"`
	CreatedAt    time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time      `json:"updatedAt" db:"updated_at"`
}

type CreateBookmarkRequest struct {
	CollectionID string   `json:"collectionId"`
	Title        string   `json:"title"`
	URL          string   `json:"url"`
	Description  string   `json:"description"`
	Favicon      string   `json:"favicon"`
	Preview      *Preview `json:"preview"`
	Tags         []string `json:"tags"`
	IsPinned     bool     `json:"isPinned"`
	OrderIndex   *int     `json:"orderIndex"`
}

// UpdateBookmarkRequest carries a partial update. Nil fields are left
// untouched.
type UpdateBookmarkRequest struct {
	CollectionID *string   `json:"collectionId"`
	Title        *string   `json:"title"`
	URL          *string   `json:"url"`
	Description  *string   `json:"description"`
	Favicon      *string   `json:"favicon"`
	Preview      *Preview  `json:"preview"`
	Tags         *[]string `json:"tags"`
	IsPinned     *bool     `json:"isPinned"`
	OrderIndex   *int      `json:"orderIndex"`
}

func (r *UpdateBookmarkRequest) IsEmpty() bool {
	return r.CollectionID == nil && r.Title == nil && r.URL == nil &&
		r.Description == nil && r.Favicon == nil && r.Preview == nil &&
		r.Tags == nil && r.IsPinned == nil && r.OrderIndex == nil
}

type ReorderRequest struct {
	CollectionID string   `json:"collectionId"`
	BookmarkIDs  []string `json:"bookmarkIds"`
}
