package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/linkstash/linkstash/preview/errors"
	"github.com/linkstash/linkstash/preview/services"
)

type PreviewHandler struct {
	service services.Service
}

func NewPreviewHandler(service services.Service) *PreviewHandler {
	return &PreviewHandler{service: service}
}

// Get returns scraped metadata for a URL. Fetch failures degrade inside
// the service, so anything but a missing url parameter is a 200.
// Endpoint: GET /bookmark-preview?url=...
func (h *PreviewHandler) Get(c *fiber.Ctx) error {
	rawURL := c.Query("url")
	if rawURL == "" {
		return errors.HandleValidationError(c, "url query parameter is required")
	}

	preview, err := h.service.GetPreview(c.Context(), rawURL)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(preview)
}
