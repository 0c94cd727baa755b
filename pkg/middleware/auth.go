// Package middleware holds the request-level guards shared by protected
// routes.
package middleware

import (
	"github.com/fintrackhq/fintrack/pkg/config"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
)

// JwtProtected verifies the bearer token's signature and expiry and stores
// the parsed token in c.Locals("user"). Revocation is checked afterwards by
// the auth service, which resolves the token against its stored record on
// every request.
func JwtProtected(cfg config.Jwt) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   jwtware.SigningKey{Key: []byte(cfg.Secret)},
		ErrorHandler: jwtError,
	})
}

// problemDetails is the RFC 9457 failure shape the rest of the API emits.
// Declared locally because webapi imports this package.
type problemDetails struct {
	Type     string `json:"type,omitempty"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`
}

// jwtError answers 401 for every token failure. Missing, malformed,
// tampered and expired tokens are all the same AUTHENTICATION_REQUIRED
// case to callers.
func jwtError(c *fiber.Ctx, err error) error {
	detail := "Invalid or expired JWT"
	if err.Error() == "Missing or malformed JWT" {
		detail = "Missing or malformed JWT"
	}
	return c.Status(fiber.StatusUnauthorized).JSON(problemDetails{
		Type:     "about:blank",
		Title:    "Unauthorized",
		Status:   fiber.StatusUnauthorized,
		Detail:   detail,
		Instance: c.OriginalURL(),
	}, "application/problem+json")
}
