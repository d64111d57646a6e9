package postgres

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/yourusername/trivia-backend/internal/domain/entity"
	apperrors "github.com/yourusername/trivia-backend/internal/pkg/errors"
)

// QuestionRepo реализует repository.QuestionRepository
type QuestionRepo struct {
	db *gorm.DB
}

// NewQuestionRepo создает новый репозиторий вопросов
func NewQuestionRepo(db *gorm.DB) *QuestionRepo {
	return &QuestionRepo{db: db}
}

// Create создает новый вопрос
func (r *QuestionRepo) Create(ctx context.Context, question *entity.Question) error {
	return r.db.WithContext(ctx).Create(question).Error
}

// CreateBatch создает пакет вопросов в одной транзакции
func (r *QuestionRepo) CreateBatch(ctx context.Context, questions []entity.Question) error {
	if len(questions) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&questions).Error
	})
}

// GetByID возвращает вопрос по ID
func (r *QuestionRepo) GetByID(ctx context.Context, id uint) (*entity.Question, error) {
	var question entity.Question
	err := r.db.WithContext(ctx).First(&question, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &question, nil
}

// Delete удаляет вопрос. Если строка не найдена, возвращает ErrNotFound
func (r *QuestionRepo) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entity.Question{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// List возвращает все вопросы, упорядоченные по id
func (r *QuestionRepo) List(ctx context.Context) ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.WithContext(ctx).Order("id").Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// ListByCategory возвращает вопросы категории.
// Колонка category строковая, поэтому id сравнивается в текстовом виде.
func (r *QuestionRepo) ListByCategory(ctx context.Context, categoryID uint) ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.WithContext(ctx).
		Where("category = ?", entity.CategoryRef(categoryID)).
		Order("id").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// Search ищет вопросы, в тексте которых встречается term (без учёта регистра).
// LOWER + LIKE вместо ILIKE, чтобы запрос работал и в PostgreSQL, и в SQLite.
func (r *QuestionRepo) Search(ctx context.Context, term string) ([]entity.Question, error) {
	var questions []entity.Question
	pattern := "%" + escapeLike(strings.ToLower(term)) + "%"
	err := r.db.WithContext(ctx).
		Where("LOWER(question) LIKE ? ESCAPE '\\'", pattern).
		Order("id").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// ListRandom возвращает вопросы в случайном порядке.
// Если categoryID == nil, выборка идёт по всем категориям.
func (r *QuestionRepo) ListRandom(ctx context.Context, categoryID *uint) ([]entity.Question, error) {
	var questions []entity.Question
	query := r.db.WithContext(ctx)
	if categoryID != nil {
		query = query.Where("category = ?", entity.CategoryRef(*categoryID))
	}
	if err := query.Order("RANDOM()").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

// Count возвращает общее количество вопросов
func (r *QuestionRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Question{}).Count(&count).Error
	return count, err
}

// escapeLike экранирует спецсимволы шаблона LIKE
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
