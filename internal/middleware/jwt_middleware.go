package middleware

import (
	"log"
	"strings"

	"galeria/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v2"
)

// bearerClaims extracts and validates the Bearer token from the request.
// On failure it writes the 401 response and returns ok=false.
func bearerClaims(c *fiber.Ctx, authService *services.AuthService) (jwt.MapClaims, bool) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		_ = c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Authorization header is required",
		})
		return nil, false
	}

	// Expected format: "Bearer <token>"
	parts := strings.SplitN(authHeader, " ", 2)
	if !(len(parts) == 2 && parts[0] == "Bearer") {
		_ = c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Authorization header format must be 'Bearer <token>'",
		})
		return nil, false
	}

	claims, err := authService.ValidateToken(parts[1])
	if err != nil {
		log.Printf("JWT validation failed: %v", err)
		_ = c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Invalid or expired token",
			"error":   err.Error(),
		})
		return nil, false
	}
	return claims, true
}

// AuthRequired is a Fiber middleware to check for a valid JWT token.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := bearerClaims(c, authService)
		if !ok {
			return nil
		}

		// Store claims in Fiber context for subsequent handlers
		c.Locals("user_id", claims["user_id"])
		c.Locals("wallet", claims["wallet"])
		c.Locals("is_admin", claims["is_admin"])

		return c.Next()
	}
}

// AdminRequired validates the JWT and additionally requires the admin
// claim. Guards the reconciliation endpoints.
func AdminRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := bearerClaims(c, authService)
		if !ok {
			return nil
		}

		if isAdmin, ok := claims["is_admin"].(bool); !ok || !isAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Admin privileges required",
			})
		}

		c.Locals("user_id", claims["user_id"])
		c.Locals("wallet", claims["wallet"])
		c.Locals("is_admin", true)

		return c.Next()
	}
}
