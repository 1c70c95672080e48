package models

import "time"

// Workspace is the root isolation boundary for a content tree. Its id is a
// caller-supplied opaque string usable as a magic link.
type Workspace struct {
	ID        string    `json:"id" db:"id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// CreateWorkspaceRequest is the payload for POST /workspaces
type CreateWorkspaceRequest struct {
	ID string `json:"id"`
}
