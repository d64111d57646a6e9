package service

import (
	"context"
	"fmt"

	"github.com/yourusername/trivia-backend/internal/domain/entity"
	"github.com/yourusername/trivia-backend/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-backend/internal/pkg/errors"
)

// CategoryService предоставляет методы для работы с категориями
type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService создает новый сервис категорий
func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// ListCategories возвращает все категории по возрастанию id
func (s *CategoryService) ListCategories(ctx context.Context) ([]entity.Category, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w: %w", apperrors.ErrInternal, err)
	}
	return categories, nil
}
