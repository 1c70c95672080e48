package models

// LinkPreview is the always-shaped response of the preview endpoint.
// Fields degrade to fallbacks rather than disappear.
type LinkPreview struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
}
