package middleware

import (
	"github.com/david-mackay/vibe-code-starter/internal/config"
	"github.com/david-mackay/vibe-code-starter/internal/dto"
	"github.com/david-mackay/vibe-code-starter/internal/session"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
)

// SessionProtected rejects requests without a valid session cookie.
// Handlers behind it still resolve the identity themselves; this gate
// only guarantees a well-signed, unexpired token is present.
func SessionProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:  jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		TokenLookup: "cookie:" + session.CookieName,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: "Unauthenticated",
			})
		},
	})
}
