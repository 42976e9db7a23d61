package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/bioscizone/bioscizone-api/internal/auth"
	"github.com/bioscizone/bioscizone-api/internal/utils"
)

// Locals keys populated by JWTProtected for downstream handlers.
const (
	LocalsUsername = "username"
	LocalsUserRole = "user_role"
)

// JWTProtected returns a middleware that validates JWT bearer tokens and
// stores the verified identity in request locals. Missing, malformed, expired,
// and foreign-signed tokens are all rejected as unauthenticated.
func JWTProtected(tokens *auth.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authorization := c.Get("Authorization")
		if authorization == "" {
			return utils.SendError(c, fiber.StatusUnauthorized, "authorization header missing")
		}

		const bearer = "Bearer "
		if !strings.HasPrefix(strings.ToLower(authorization), strings.ToLower(bearer)) {
			return utils.SendError(c, fiber.StatusUnauthorized, "invalid authorization header")
		}

		tokenString := strings.TrimSpace(authorization[len(bearer):])
		if tokenString == "" {
			return utils.SendError(c, fiber.StatusUnauthorized, "invalid token")
		}

		claims, err := tokens.Verify(tokenString)
		if err != nil {
			return utils.SendError(c, fiber.StatusUnauthorized, "could not validate credentials")
		}

		c.Locals(LocalsUsername, claims.Subject)
		c.Locals(LocalsUserRole, claims.Role)

		return c.Next()
	}
}
