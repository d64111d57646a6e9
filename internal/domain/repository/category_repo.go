package repository

import (
	"context"

	"github.com/yourusername/trivia-backend/internal/domain/entity"
)

// CategoryRepository определяет методы для работы с категориями
type CategoryRepository interface {
	CreateBatch(ctx context.Context, categories []entity.Category) error
	GetByID(ctx context.Context, id uint) (*entity.Category, error)
	List(ctx context.Context) ([]entity.Category, error)
	Count(ctx context.Context) (int64, error)
}
