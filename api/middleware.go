package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/sicko7947/bookshelf"
)

// requestLogger assigns each request an id and logs its outcome.
func (s *Server) requestLogger() fiber.Handler {
	return func(c fiber.Ctx) error {
		requestID := uuid.NewString()
		c.Set("X-Request-Id", requestID)

		logger := bookshelf.RequestLogger(s.logger, requestID, c.Method(), c.Path())

		start := time.Now()
		err := c.Next()

		bookshelf.LogRequestCompleted(logger, c.Method(), c.Path(),
			c.Response().StatusCode(), time.Since(start))
		return err
	}
}

// requireBearer rejects requests without a bearer token. Token validation
// happens upstream at the gateway; the core only needs an authenticated
// principal present or absent.
func requireBearer() fiber.Handler {
	return func(c fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, "Bearer ") || strings.TrimSpace(strings.TrimPrefix(header, "Bearer ")) == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "missing bearer token",
			})
		}
		return c.Next()
	}
}
