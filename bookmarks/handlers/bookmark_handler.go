package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/linkstash/linkstash/bookmarks/errors"
	"github.com/linkstash/linkstash/bookmarks/models"
	"github.com/linkstash/linkstash/bookmarks/repository"
	"github.com/linkstash/linkstash/bookmarks/services"
)

type BookmarkHandler struct {
	service services.Service
}

func NewBookmarkHandler(service services.Service) *BookmarkHandler {
	return &BookmarkHandler{service: service}
}

// List returns bookmarks, optionally filtered. collectionId takes
// precedence over spaceId; with neither the full set is returned.
// Endpoint: GET /bookmarks?collectionId=...&spaceId=...
func (h *BookmarkHandler) List(c *fiber.Ctx) error {
	filter := repository.ListFilter{
		CollectionID: c.Query("collectionId"),
		SpaceID:      c.Query("spaceId"),
	}

	bookmarks, err := h.service.ListBookmarks(c.Context(), filter)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(bookmarks)
}

// Search matches the query against title, description and url.
// Endpoint: GET /bookmarks/search?q=...
func (h *BookmarkHandler) Search(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return errors.HandleValidationError(c, "q query parameter is required")
	}

	bookmarks, err := h.service.SearchBookmarks(c.Context(), query)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(bookmarks)
}

// Pinned returns every pinned bookmark.
// Endpoint: GET /bookmarks/pinned
func (h *BookmarkHandler) Pinned(c *fiber.Ctx) error {
	bookmarks, err := h.service.ListPinned(c.Context())
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(bookmarks)
}

// Recent returns the most recently updated bookmarks.
// Endpoint: GET /bookmarks/recent?limit=...
func (h *BookmarkHandler) Recent(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)

	bookmarks, err := h.service.ListRecent(c.Context(), limit)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(bookmarks)
}

// Get returns a single bookmark.
// Endpoint: GET /bookmarks/:id
func (h *BookmarkHandler) Get(c *fiber.Ctx) error {
	bookmark, err := h.service.GetBookmark(c.Context(), c.Params("id"))
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(bookmark)
}

// Create creates a bookmark.
// Endpoint: POST /bookmarks
func (h *BookmarkHandler) Create(c *fiber.Ctx) error {
	var req models.CreateBookmarkRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleValidationError(c, "Invalid request body")
	}

	bookmark, err := h.service.CreateBookmark(c.Context(), &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(bookmark)
}

// Update applies a partial update to a bookmark.
// Endpoint: PUT /bookmarks/:id
func (h *BookmarkHandler) Update(c *fiber.Ctx) error {
	var req models.UpdateBookmarkRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleValidationError(c, "Invalid request body")
	}

	bookmark, err := h.service.UpdateBookmark(c.Context(), c.Params("id"), &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(bookmark)
}

// Delete removes a bookmark.
// Endpoint: DELETE /bookmarks/:id
func (h *BookmarkHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.DeleteBookmark(c.Context(), c.Params("id")); err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"deleted": true})
}

// Reorder rewrites a collection's ordering and returns the fresh list.
// Endpoint: PUT /bookmarks/reorder
func (h *BookmarkHandler) Reorder(c *fiber.Ctx) error {
	var req models.ReorderRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleValidationError(c, "Invalid request body")
	}

	bookmarks, err := h.service.ReorderBookmarks(c.Context(), &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(bookmarks)
}
