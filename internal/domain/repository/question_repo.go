package repository

import (
	"context"

	"github.com/yourusername/trivia-backend/internal/domain/entity"
)

// QuestionRepository определяет методы для работы с вопросами
type QuestionRepository interface {
	Create(ctx context.Context, question *entity.Question) error
	CreateBatch(ctx context.Context, questions []entity.Question) error
	GetByID(ctx context.Context, id uint) (*entity.Question, error)
	Delete(ctx context.Context, id uint) error

	// List возвращает все вопросы по возрастанию id
	List(ctx context.Context) ([]entity.Question, error)
	// ListByCategory возвращает вопросы категории по возрастанию id
	ListByCategory(ctx context.Context, categoryID uint) ([]entity.Question, error)
	// Search ищет подстроку в тексте вопроса без учёта регистра
	Search(ctx context.Context, term string) ([]entity.Question, error)
	// ListRandom возвращает вопросы в случайном порядке; nil-категория означает все вопросы
	ListRandom(ctx context.Context, categoryID *uint) ([]entity.Question, error)
	Count(ctx context.Context) (int64, error)
}
