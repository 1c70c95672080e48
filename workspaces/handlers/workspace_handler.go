package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/linkstash/linkstash/workspaces/errors"
	"github.com/linkstash/linkstash/workspaces/models"
	"github.com/linkstash/linkstash/workspaces/services"
)

type WorkspaceHandler struct {
	service services.Service
}

func NewWorkspaceHandler(service services.Service) *WorkspaceHandler {
	return &WorkspaceHandler{service: service}
}

// Ensure returns the workspace with the requested id, creating it when
// absent. 201 for a fresh workspace, 200 when it already existed.
// Endpoint: POST /workspaces
func (h *WorkspaceHandler) Ensure(c *fiber.Ctx) error {
	var req models.CreateWorkspaceRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleValidationError(c, "Invalid request body")
	}

	if strings.TrimSpace(req.ID) == "" {
		return errors.HandleValidationError(c, "id is required")
	}

	workspace, created, err := h.service.EnsureWorkspace(c.Context(), req.ID)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	return c.Status(status).JSON(workspace)
}

// Get returns a workspace by id.
// Endpoint: GET /workspaces/:id
func (h *WorkspaceHandler) Get(c *fiber.Ctx) error {
	workspace, err := h.service.GetWorkspace(c.Context(), c.Params("id"))
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusOK).JSON(workspace)
}
