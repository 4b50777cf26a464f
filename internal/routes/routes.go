package routes

import (
	"time"

	"github.com/david-mackay/vibe-code-starter/internal/config"
	"github.com/david-mackay/vibe-code-starter/internal/handlers"
	"github.com/david-mackay/vibe-code-starter/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	sessionHandler *handlers.SessionHandler,
	todoHandler *handlers.TodoHandler,
	healthHandler *handlers.HealthHandler,
) {
	// General rate limiter: 60 req/min per IP
	app.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	app.Get("/health", healthHandler.Check)

	// Sign-in is stricter: 10 req/min per IP. There is no
	// proof-of-possession check on this endpoint, so at least keep
	// address-claim spam bounded.
	signInLimiter := limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	})
	app.Post("/session", signInLimiter, sessionHandler.Create)
	app.Get("/session", sessionHandler.Get)
	app.Post("/logout", sessionHandler.Logout)

	// Todo routes require a valid session cookie; identity resolution
	// against the store happens inside the handlers.
	protected := middleware.SessionProtected(cfg)
	app.Get("/todos", protected, todoHandler.List)
	app.Post("/todos", protected, todoHandler.Create)
	app.Patch("/todos/:id", protected, todoHandler.Update)
	app.Delete("/todos/:id", protected, todoHandler.Delete)
}
