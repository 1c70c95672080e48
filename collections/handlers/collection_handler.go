package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/linkstash/linkstash/collections/errors"
	"github.com/linkstash/linkstash/collections/models"
	"github.com/linkstash/linkstash/collections/repository"
	"github.com/linkstash/linkstash/collections/services"
)

type CollectionHandler struct {
	service services.Service
}

func NewCollectionHandler(service services.Service) *CollectionHandler {
	return &CollectionHandler{service: service}
}

// List returns collections ordered by order index. Both filters are
// optional; without them the full set is returned, which the dashboard
// counters rely on.
// Endpoint: GET /collections?spaceId=...&workspaceId=...
func (h *CollectionHandler) List(c *fiber.Ctx) error {
	filter := repository.ListFilter{
		SpaceID:     c.Query("spaceId"),
		WorkspaceID: c.Query("workspaceId"),
	}

	collections, err := h.service.ListCollections(c.Context(), filter)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(collections)
}

// Create creates a collection.
// Endpoint: POST /collections
func (h *CollectionHandler) Create(c *fiber.Ctx) error {
	var req models.CreateCollectionRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleValidationError(c, "Invalid request body")
	}

	collection, err := h.service.CreateCollection(c.Context(), &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(collection)
}

// Update applies a partial update to a collection.
// Endpoint: PUT /collections/:id
func (h *CollectionHandler) Update(c *fiber.Ctx) error {
	var req models.UpdateCollectionRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleValidationError(c, "Invalid request body")
	}

	collection, err := h.service.UpdateCollection(c.Context(), c.Params("id"), &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(collection)
}

// Delete removes a collection and its bookmarks.
// Endpoint: DELETE /collections/:id
func (h *CollectionHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.DeleteCollection(c.Context(), c.Params("id")); err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"deleted": true})
}
