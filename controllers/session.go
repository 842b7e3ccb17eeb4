package controllers

import (
	"math"
	"time"

	"github.com/gofiber/fiber/v2"

	"idcard/middleware"
	"idcard/utils"
)

// GetSession reports the server-side view of the caller's session token.
// It must run behind middleware.JWTMiddleware.
func (h *Handler) GetSession(c *fiber.Ctx) error {
	claims, ok := c.Locals(middleware.LocalClaims).(*utils.SessionClaims)
	if !ok || claims.ExpiresAt == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "invalid token"})
	}

	expiresAt := claims.ExpiresAt.Time
	remaining := expiresAt.Sub(h.now())
	minutes := 0
	if remaining > 0 {
		minutes = int(math.Ceil(remaining.Minutes()))
	}

	return c.JSON(fiber.Map{
		"success":          true,
		"username":         claims.Username,
		"loginTime":        claims.LoginTime,
		"expiresAt":        expiresAt.UTC().Format(time.RFC3339),
		"remainingMinutes": minutes,
	})
}
