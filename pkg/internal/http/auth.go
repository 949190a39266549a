package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/yatube/server/pkg/internal/services"
)

// authMiddleware resolves an optional bearer credential into the account
// it belongs to. Requests with a bad or missing token simply continue
// unauthenticated; guarded handlers reject them via EnsureAuthenticated.
func authMiddleware(c *fiber.Ctx) error {
	var token string
	if authorization := c.Get(fiber.HeaderAuthorization); strings.HasPrefix(authorization, "Bearer ") {
		token = strings.TrimPrefix(authorization, "Bearer ")
	} else if len(c.Query("tk")) > 0 {
		token = c.Query("tk")
	}

	if len(token) > 0 {
		if user, err := services.ResolveAccount(token); err == nil {
			c.Locals("user", user)
		}
	}

	return c.Next()
}
