package spaces

import (
	"github.com/gofiber/fiber/v2"

	"github.com/linkstash/linkstash/spaces/handlers"
)

type Handlers struct {
	SpaceHandler *handlers.SpaceHandler
}

// RegisterRoutes wires space endpoints under the API base group.
func RegisterRoutes(api fiber.Router, handlers *Handlers) {
	group := api.Group("/spaces")

	group.Get("/", handlers.SpaceHandler.List)
	group.Post("/", handlers.SpaceHandler.Create)
	group.Put("/:id", handlers.SpaceHandler.Update)
	group.Delete("/:id", handlers.SpaceHandler.Delete)
}
