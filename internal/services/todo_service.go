package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/david-mackay/vibe-code-starter/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TodoService handles ownership-scoped todo CRUD. Ownership is enforced
// by the query predicate, not a separate authorization check, so "not
// owned" and "does not exist" are indistinguishable to callers.
type TodoService struct {
	db *gorm.DB
}

func NewTodoService(db *gorm.DB) *TodoService {
	return &TodoService{db: db}
}

func (s *TodoService) List(userID uuid.UUID) ([]models.Todo, error) {
	todos := make([]models.Todo, 0)
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&todos).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return todos, nil
}

func (s *TodoService) Create(userID uuid.UUID, title string) (*models.Todo, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	todo := models.Todo{
		UserID: userID,
		Title:  title,
	}
	if err := s.db.Create(&todo).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return &todo, nil
}

func (s *TodoService) Update(userID, todoID uuid.UUID, title *string, completed *bool) (*models.Todo, error) {
	updates := map[string]interface{}{}
	if title != nil {
		next := strings.TrimSpace(*title)
		if next == "" {
			return nil, ErrEmptyTitle
		}
		updates["title"] = next
	}
	if completed != nil {
		updates["completed"] = *completed
	}

	var todo models.Todo
	if err := s.db.Where("id = ? AND user_id = ?", todoID, userID).First(&todo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTodoNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	if len(updates) > 0 {
		if err := s.db.Model(&todo).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
	}
	return &todo, nil
}

func (s *TodoService) Delete(userID, todoID uuid.UUID) error {
	result := s.db.Where("id = ? AND user_id = ?", todoID, userID).Delete(&models.Todo{})
	if result.Error != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTodoNotFound
	}
	return nil
}
