package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader is the standard header name used to propagate request IDs.
	RequestIDHeader = "X-Request-ID"
	// RequestIDLocalKey is the key used to store the request ID in Fiber's context locals.
	RequestIDLocalKey = "request_id"

	maxRequestIDLen = 128
)

// RequestID ensures every request has an ID, stored in locals and echoed in
// the X-Request-ID response header. A client-supplied ID is kept when it is
// short printable ASCII; anything else is replaced by a new UUID.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		assignRequestID(c)
		return c.Next()
	}
}

func assignRequestID(c *fiber.Ctx) string {
	id := c.Get(RequestIDHeader)
	if !validRequestID(id) {
		id = uuid.NewString()
	}

	c.Locals(RequestIDLocalKey, id)
	c.Set(RequestIDHeader, id)
	return id
}

// RequestIDFrom returns the ID set by RequestID. Requests rejected before any
// middleware ran (an oversized body) are assigned one here.
func RequestIDFrom(c *fiber.Ctx) string {
	if id, ok := c.Locals(RequestIDLocalKey).(string); ok {
		return id
	}
	return assignRequestID(c)
}

func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLen {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}
	return true
}
