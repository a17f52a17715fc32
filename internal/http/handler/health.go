package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// PingFunc checks connectivity to the backing database.
type PingFunc func(ctx context.Context) error

// Hello handles the root endpoint kept for the mobile client's reachability
// check.
//
// @Summary Reachability check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func Hello() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"Hello": "World"})
	}
}

// HealthCheck reports whether the database answers a ping.
//
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} errorPayload
// @Router /health [get]
func HealthCheck(ping PingFunc) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := ping(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe is a plain liveness check with no dependencies.
//
// @Summary Liveness probe
// @Tags health
// @Success 200
// @Router /healthz [get]
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
