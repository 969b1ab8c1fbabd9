package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Dependency is a backing service the readiness check pings.
type Dependency struct {
	Name string
	Ping func(ctx context.Context) error
}

// HealthCheck checks every configured dependency; with none it is always healthy.
func HealthCheck(deps ...Dependency) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()

		checks := make(map[string]string, len(deps))
		for _, d := range deps {
			if err := d.Ping(ctx); err != nil {
				return writeError(c, fiber.StatusServiceUnavailable, CodeUnavailable, d.Name+" unavailable")
			}
			checks[d.Name] = "ok"
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy", "checks": checks})
	}
}

// LivenessProbe answers 200 while the process serves requests.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
