package bookmarks

import (
	"github.com/gofiber/fiber/v2"

	"github.com/linkstash/linkstash/bookmarks/handlers"
)

type Handlers struct {
	BookmarkHandler *handlers.BookmarkHandler
}

// RegisterRoutes wires bookmark endpoints under the API base group. The
// static segments are registered before "/:id" so Fiber does not swallow
// them as ids.
func RegisterRoutes(api fiber.Router, handlers *Handlers) {
	group := api.Group("/bookmarks")

	group.Get("/", handlers.BookmarkHandler.List)
	group.Post("/", handlers.BookmarkHandler.Create)
	group.Get("/search", handlers.BookmarkHandler.Search)
	group.Get("/pinned", handlers.BookmarkHandler.Pinned)
	group.Get("/recent", handlers.BookmarkHandler.Recent)
	group.Put("/reorder", handlers.BookmarkHandler.Reorder)
	group.Get("/:id", handlers.BookmarkHandler.Get)
	group.Put("/:id", handlers.BookmarkHandler.Update)
	group.Delete("/:id", handlers.BookmarkHandler.Delete)
}
