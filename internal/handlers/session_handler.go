package handlers

import (
	"log/slog"

	"github.com/david-mackay/vibe-code-starter/internal/config"
	"github.com/david-mackay/vibe-code-starter/internal/dto"
	"github.com/david-mackay/vibe-code-starter/internal/services"
	"github.com/david-mackay/vibe-code-starter/internal/session"
	"github.com/gofiber/fiber/v2"
)

type SessionHandler struct {
	sessions *services.SessionService
	cfg      *config.Config
}

func NewSessionHandler(sessions *services.SessionService, cfg *config.Config) *SessionHandler {
	return &SessionHandler{sessions: sessions, cfg: cfg}
}

// Create handles POST /session. Sign-in never touches the store; the
// user row is created lazily on the first request that needs one.
func (h *SessionHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateSessionRequest
	if err := c.BodyParser(&req); err != nil || req.WalletAddress == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Missing walletAddress",
		})
	}

	token, address, err := h.sessions.SignIn(req.WalletAddress)
	if err != nil {
		slog.Error("failed to issue session token", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "Internal server error",
		})
	}

	session.Attach(c, token, h.cfg.SessionTTL, h.cfg.IsProduction())

	// The id mirrors the wallet address until a durable user row exists.
	return c.JSON(dto.SessionResponse{
		OK:   true,
		User: dto.SessionUser{ID: address, WalletAddress: address},
	})
}

// Get handles GET /session, the cheap "am I logged in" check.
func (h *SessionHandler) Get(c *fiber.Ctx) error {
	ident, ok := h.sessions.AuthenticatedIdentity(session.Extract(c))
	if !ok {
		return c.JSON(dto.SessionStateResponse{Authenticated: false})
	}
	return c.JSON(dto.SessionStateResponse{
		Authenticated: true,
		User:          &dto.SessionUser{ID: ident.Subject, WalletAddress: ident.WalletAddress},
	})
}

// Logout handles POST /logout. Idempotent regardless of prior state.
func (h *SessionHandler) Logout(c *fiber.Ctx) error {
	session.Clear(c)
	return c.JSON(fiber.Map{"ok": true})
}
