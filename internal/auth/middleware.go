package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const claimsKey = "auth_claims"

// Middleware validates bearer tokens and stores the decoded claims in locals.
func Middleware(verifier TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerFromHeader(c.Get(fiber.HeaderAuthorization))
		if token == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing bearer token")
		}

		claims, err := verifier.Verify(c.Context(), token)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid or expired token")
		}

		c.Locals(claimsKey, claims)
		return c.Next()
	}
}

// FromContext returns the claims the middleware attached to the request.
func FromContext(c *fiber.Ctx) (Claims, bool) {
	claims, ok := c.Locals(claimsKey).(Claims)
	return claims, ok
}

// WithClaims attaches claims directly; handler tests use it in place of
// the real middleware.
func WithClaims(claims Claims) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(claimsKey, claims)
		return c.Next()
	}
}

func bearerFromHeader(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
