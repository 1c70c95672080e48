package requestid

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofrs/uuid"
)

const (
	// HeaderRequestID is the header the id is read from and echoed back on.
	HeaderRequestID = "X-Request-ID"
	// ContextKeyRequestID is the fiber locals key the id is stored under.
	ContextKeyRequestID = "request_id"
)

// New returns middleware that propagates an incoming X-Request-ID or
// assigns a fresh one, storing it in locals and echoing it in the response.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(HeaderRequestID)
		if requestID == "" {
			requestID = newID()
		}

		c.Locals(ContextKeyRequestID, requestID)
		c.Set(HeaderRequestID, requestID)

		return c.Next()
	}
}

func newID() string {
	id, err := uuid.NewV4()
	if err != nil {
		return fmt.Sprintf("req-%d", time.Now().UnixNano())
	}
	return id.String()
}

// GetRequestID returns the request id stored by New, or "" outside it.
func GetRequestID(c *fiber.Ctx) string {
	if id, ok := c.Locals(ContextKeyRequestID).(string); ok {
		return id
	}
	return ""
}
