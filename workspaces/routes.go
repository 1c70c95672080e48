package workspaces

import (
	"github.com/gofiber/fiber/v2"

	"github.com/linkstash/linkstash/workspaces/handlers"
)

type Handlers struct {
	WorkspaceHandler *handlers.WorkspaceHandler
}

// RegisterRoutes wires workspace endpoints under the API base group.
func RegisterRoutes(api fiber.Router, handlers *Handlers) {
	group := api.Group("/workspaces")

	group.Post("/", handlers.WorkspaceHandler.Ensure)
	group.Get("/:id", handlers.WorkspaceHandler.Get)
}
