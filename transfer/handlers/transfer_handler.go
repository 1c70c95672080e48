package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/linkstash/linkstash/transfer/errors"
	"github.com/linkstash/linkstash/transfer/models"
	"github.com/linkstash/linkstash/transfer/services"
)

type TransferHandler struct {
	service services.Service
}

func NewTransferHandler(service services.Service) *TransferHandler {
	return &TransferHandler{service: service}
}

// Export snapshots a workspace's tree into a portable document.
// Endpoint: GET /export?workspaceId=...
func (h *TransferHandler) Export(c *fiber.Ctx) error {
	workspaceID := c.Query("workspaceId")
	if workspaceID == "" {
		return errors.HandleValidationError(c, "workspaceId query parameter is required")
	}

	document, err := h.service.Export(c.Context(), workspaceID)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(document)
}

// Import recreates a previously exported tree under a workspace.
// Endpoint: POST /import
func (h *TransferHandler) Import(c *fiber.Ctx) error {
	var req models.ImportRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleValidationError(c, "Invalid request body")
	}

	result, err := h.service.Import(c.Context(), &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(result)
}
