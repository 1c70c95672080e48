package preview

import (
	"github.com/gofiber/fiber/v2"

	"github.com/linkstash/linkstash/preview/handlers"
)

type Handlers struct {
	PreviewHandler *handlers.PreviewHandler
}

// RegisterRoutes wires the preview endpoint under the API base group.
func RegisterRoutes(api fiber.Router, handlers *Handlers) {
	api.Get("/bookmark-preview", handlers.PreviewHandler.Get)
}
