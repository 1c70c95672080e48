package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/linkstash/linkstash/shares/errors"
	"github.com/linkstash/linkstash/shares/models"
	"github.com/linkstash/linkstash/shares/services"
)

type ShareHandler struct {
	service services.Service
}

func NewShareHandler(service services.Service) *ShareHandler {
	return &ShareHandler{service: service}
}

// List returns the workspace's shares.
// Endpoint: GET /shares?workspaceId=...
func (h *ShareHandler) List(c *fiber.Ctx) error {
	workspaceID := c.Query("workspaceId")
	if workspaceID == "" {
		return errors.HandleValidationError(c, "workspaceId query parameter is required")
	}

	shares, err := h.service.ListShares(c.Context(), workspaceID)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(shares)
}

// Get returns a share by id.
// Endpoint: GET /shares/:id
func (h *ShareHandler) Get(c *fiber.Ctx) error {
	share, err := h.service.GetShare(c.Context(), c.Params("id"))
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(share)
}

// View resolves a view key; expired shares read as 404.
// Endpoint: GET /shares/view/:viewKey
func (h *ShareHandler) View(c *fiber.Ctx) error {
	share, err := h.service.GetShareByViewKey(c.Context(), c.Params("viewKey"))
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(share)
}

// Create creates a share with a server-generated view key.
// Endpoint: POST /shares
func (h *ShareHandler) Create(c *fiber.Ctx) error {
	var req models.CreateShareRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleValidationError(c, "Invalid request body")
	}

	share, err := h.service.CreateShare(c.Context(), &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(share)
}

// Update applies a partial update to a share.
// Endpoint: PUT /shares/:id
func (h *ShareHandler) Update(c *fiber.Ctx) error {
	var req models.UpdateShareRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleValidationError(c, "Invalid request body")
	}

	share, err := h.service.UpdateShare(c.Context(), c.Params("id"), &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(share)
}

// Delete removes a share.
// Endpoint: DELETE /shares/:id
func (h *ShareHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.DeleteShare(c.Context(), c.Params("id")); err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"deleted": true})
}
