package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/linkstash/linkstash/spaces/errors"
	"github.com/linkstash/linkstash/spaces/models"
	"github.com/linkstash/linkstash/spaces/services"
)

type SpaceHandler struct {
	service services.Service
}

func NewSpaceHandler(service services.Service) *SpaceHandler {
	return &SpaceHandler{service: service}
}

// List returns the spaces of a workspace ordered by order index.
// Endpoint: GET /spaces?workspaceId=...
func (h *SpaceHandler) List(c *fiber.Ctx) error {
	workspaceID := c.Query("workspaceId")
	if workspaceID == "" {
		return errors.HandleValidationError(c, "workspaceId query parameter is required")
	}

	spaces, err := h.service.ListSpaces(c.Context(), workspaceID)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(spaces)
}

// Create creates a space.
// Endpoint: POST /spaces
func (h *SpaceHandler) Create(c *fiber.Ctx) error {
	var req models.CreateSpaceRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleValidationError(c, "Invalid request body")
	}

	space, err := h.service.CreateSpace(c.Context(), &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(space)
}

// Update applies a partial update to a space.
// Endpoint: PUT /spaces/:id
func (h *SpaceHandler) Update(c *fiber.Ctx) error {
	var req models.UpdateSpaceRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleValidationError(c, "Invalid request body")
	}

	space, err := h.service.UpdateSpace(c.Context(), c.Params("id"), &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(space)
}

// Delete removes a space and everything beneath it.
// Endpoint: DELETE /spaces/:id
func (h *SpaceHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.DeleteSpace(c.Context(), c.Params("id")); err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"deleted": true})
}
