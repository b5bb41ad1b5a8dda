package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// APIVersion is the version of the HTTP API served
const APIVersion = "1.0.0"

const apiVersionHeader = "X-Api-Version"

// VersionMiddleware reads the requested X-Api-Version, stores it in context and
// echoes the served version on the response.
func VersionMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		version := strings.TrimSpace(c.Get(apiVersionHeader, APIVersion))

		// Support version aliases
		switch version {
		case "1", "1.0":
			version = APIVersion
		}

		c.Locals("apiVersion", version)
		c.Set(apiVersionHeader, APIVersion)

		return c.Next()
	}
}
