package utils

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const CookieName = "jwt"

// SecretKey and SessionTTL are set from config at startup.
var (
	SecretKey  = "idcard-dev-secret"
	SessionTTL = 24 * time.Hour
)

// SessionClaims mirrors the client-side session: who logged in and when.
type SessionClaims struct {
	Username  string `json:"username"`
	LoginTime int64  `json:"loginTime"`
	jwt.RegisteredClaims
}

func GenerateJWTToken(username string, loginTime time.Time) (string, error) {
	claims := SessionClaims{
		Username:  username,
		LoginTime: loginTime.UnixMilli(),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(loginTime),
			ExpiresAt: jwt.NewNumericDate(loginTime.Add(SessionTTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(SecretKey))
	if err != nil {
		return "", err
	}
	return token, nil
}

func SetJWTCookie(c *fiber.Ctx, token string, expires time.Time) {
	cookie := fiber.Cookie{
		Name:     CookieName,
		Value:    token,
		Expires:  expires,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Strict",
	}
	c.Cookie(&cookie)
}

func ParseJWTToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(SecretKey), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, fiber.ErrUnauthorized
	}
	return claims, nil
}
