package shares

import (
	"github.com/gofiber/fiber/v2"

	"github.com/linkstash/linkstash/shares/handlers"
)

type Handlers struct {
	ShareHandler *handlers.ShareHandler
}

// RegisterRoutes wires share endpoints under the API base group. The
// "/view/:viewKey" segment is registered before "/:id".
func RegisterRoutes(api fiber.Router, handlers *Handlers) {
	group := api.Group("/shares")

	group.Get("/", handlers.ShareHandler.List)
	group.Post("/", handlers.ShareHandler.Create)
	group.Get("/view/:viewKey", handlers.ShareHandler.View)
	group.Get("/:id", handlers.ShareHandler.Get)
	group.Put("/:id", handlers.ShareHandler.Update)
	group.Delete("/:id", handlers.ShareHandler.Delete)
}
