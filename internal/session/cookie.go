package session

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// CookieName is fixed; the cookie value is the signed session token.
const CookieName = "vibe_session"

// Attach sets the session cookie on the response. Secure is tied to
// production mode by the caller.
func Attach(c *fiber.Ctx, token string, ttl time.Duration, secure bool) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HTTPOnly: true,
		Secure:   secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// Clear overwrites the cookie with an immediately-expired empty value at
// the same path, so removal works regardless of the prior cookie state.
func Clear(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// Extract returns the raw cookie value, or "" when absent. Absence is a
// normal outcome, not an error.
func Extract(c *fiber.Ctx) string {
	return c.Cookies(CookieName)
}
