package transfer

import (
	"github.com/gofiber/fiber/v2"

	"github.com/linkstash/linkstash/transfer/handlers"
)

type Handlers struct {
	TransferHandler *handlers.TransferHandler
}

// RegisterRoutes wires the export/import endpoints directly under the API
// base group.
func RegisterRoutes(api fiber.Router, handlers *Handlers) {
	api.Get("/export", handlers.TransferHandler.Export)
	api.Post("/import", handlers.TransferHandler.Import)
}
