package collections

import (
	"github.com/gofiber/fiber/v2"

	"github.com/linkstash/linkstash/collections/handlers"
)

type Handlers struct {
	CollectionHandler *handlers.CollectionHandler
}

// RegisterRoutes wires collection endpoints under the API base group.
func RegisterRoutes(api fiber.Router, handlers *Handlers) {
	group := api.Group("/collections")

	group.Get("/", handlers.CollectionHandler.List)
	group.Post("/", handlers.CollectionHandler.Create)
	group.Put("/:id", handlers.CollectionHandler.Update)
	group.Delete("/:id", handlers.CollectionHandler.Delete)
}
