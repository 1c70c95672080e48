package models

import "time"

// Space is a named grouping of collections within a workspace.
type Space struct {
	ID          string    `json:"id" db:"id"`
	WorkspaceID string    `json:"workspaceId" db:"workspace_id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Icon        string    `json:"icon" db:"icon"`
	OrderIndex  int       `json:"orderIndex" db:"order_index"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// CreateSpaceRequest is the payload for POST /spaces
type CreateSpaceRequest struct {
	WorkspaceID string `json:"workspaceId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	OrderIndex  *int   `json:"orderIndex"`
}

// UpdateSpaceRequest carries a partial update; nil fields are left untouched.
type UpdateSpaceRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	OrderIndex  *int    `json:"orderIndex"`
}

// IsEmpty reports whether the update carries no fields.
func (r *UpdateSpaceRequest) IsEmpty() bool {
	return r.Name == nil && r.Description == nil && r.Icon == nil && r.OrderIndex == nil
}
