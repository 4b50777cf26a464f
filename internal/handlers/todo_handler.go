package handlers

import (
	"errors"

	"github.com/david-mackay/vibe-code-starter/internal/dto"
	"github.com/david-mackay/vibe-code-starter/internal/models"
	"github.com/david-mackay/vibe-code-starter/internal/services"
	"github.com/david-mackay/vibe-code-starter/internal/session"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const storeDownMessage = "Database not configured. Configure your database to use todos."

type TodoHandler struct {
	sessions *services.SessionService
	todos    *services.TodoService
}

func NewTodoHandler(sessions *services.SessionService, todos *services.TodoService) *TodoHandler {
	return &TodoHandler{sessions: sessions, todos: todos}
}

func (h *TodoHandler) resolveUser(c *fiber.Ctx) (*models.User, error) {
	return h.sessions.RequireResolvedUser(session.Extract(c))
}

// List handles GET /todos. The read path is lenient: a down store
// degrades to an empty list with an error note instead of failing.
func (h *TodoHandler) List(c *fiber.Ctx) error {
	user, err := h.resolveUser(c)
	if err != nil {
		if errors.Is(err, services.ErrUnauthenticated) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Unauthenticated"})
		}
		return c.JSON(fiber.Map{"todos": []models.Todo{}, "error": storeDownMessage})
	}

	todos, err := h.todos.List(user.ID)
	if err != nil {
		return c.JSON(fiber.Map{"todos": []models.Todo{}, "error": storeDownMessage})
	}
	return c.JSON(fiber.Map{"todos": todos})
}

// Create handles POST /todos (strict write path).
func (h *TodoHandler) Create(c *fiber.Ctx) error {
	user, err := h.resolveUser(c)
	if err != nil {
		return h.resolutionError(c, err)
	}

	var req dto.CreateTodoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Missing title"})
	}

	todo, err := h.todos.Create(user.ID, req.Title)
	if err != nil {
		if errors.Is(err, services.ErrEmptyTitle) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Missing title"})
		}
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Error: storeDownMessage})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"todo": todo})
}

// Update handles PATCH /todos/:id.
func (h *TodoHandler) Update(c *fiber.Ctx) error {
	user, err := h.resolveUser(c)
	if err != nil {
		return h.resolutionError(c, err)
	}

	todoID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		// An unparseable id can never match the ownership predicate.
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Not found"})
	}

	var req dto.UpdateTodoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid request body"})
	}

	todo, err := h.todos.Update(user.ID, todoID, req.Title, req.Completed)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyTitle):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Title cannot be empty"})
		case errors.Is(err, services.ErrTodoNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Not found"})
		default:
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Error: storeDownMessage})
		}
	}
	return c.JSON(fiber.Map{"todo": todo})
}

// Delete handles DELETE /todos/:id.
func (h *TodoHandler) Delete(c *fiber.Ctx) error {
	user, err := h.resolveUser(c)
	if err != nil {
		return h.resolutionError(c, err)
	}

	todoID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Not found"})
	}

	if err := h.todos.Delete(user.ID, todoID); err != nil {
		if errors.Is(err, services.ErrTodoNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Not found"})
		}
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Error: storeDownMessage})
	}
	return c.JSON(fiber.Map{"ok": true})
}

// resolutionError maps identity-resolution failures for the strict paths:
// 401 for missing/invalid sessions, 503 when the store is down.
func (h *TodoHandler) resolutionError(c *fiber.Ctx, err error) error {
	if errors.Is(err, services.ErrUnauthenticated) {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Unauthenticated"})
	}
	return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Error: storeDownMessage})
}
