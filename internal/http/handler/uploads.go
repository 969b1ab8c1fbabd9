package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"careers/internal/storage"
)

// ServeUpload handles GET /uploads/:name, streaming a stored CV.
func ServeUpload(store storage.Storage, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rc, info, err := store.Get(c.UserContext(), c.Params("name"))
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) || errors.Is(err, storage.ErrInvalidKey) {
				return writeError(c, fiber.StatusNotFound, CodeNotFound, "file not found")
			}
			return writeServiceError(c, log, err)
		}

		c.Set(fiber.HeaderContentType, info.ContentType)
		c.Set(fiber.HeaderContentDisposition, `inline; filename="`+info.Key+`"`)
		c.Set("X-Content-Type-Options", "nosniff")
		if !info.LastModified.IsZero() {
			c.Set(fiber.HeaderLastModified, info.LastModified.UTC().Format(http.TimeFormat))
		}
		// fasthttp closes rc once the body has been written.
		return c.SendStream(rc, int(info.Size))
	}
}

func queryInt(c *fiber.Ctx, key string, def int) (int, error) {
	v := c.Query(key)
	if v == "" {
		return def, nil
	}
	return strconv.Atoi(v)
}
