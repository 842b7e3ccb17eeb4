package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"idcard/utils"
)

const (
	LocalClaims   = "claims"
	LocalUsername = "username"
)

// JWTMiddleware accepts the session token as a Bearer header or as the jwt cookie.
func JWTMiddleware(c *fiber.Ctx) error {
	token := ""
	if auth := c.Get(fiber.HeaderAuthorization); strings.HasPrefix(auth, "Bearer ") {
		token = strings.TrimPrefix(auth, "Bearer ")
	} else {
		token = c.Cookies(utils.CookieName)
	}
	if token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "missing token"})
	}

	claims, err := utils.ParseJWTToken(token)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "invalid token"})
	}

	c.Locals(LocalClaims, claims)
	c.Locals(LocalUsername, claims.Username)
	return c.Next()
}
