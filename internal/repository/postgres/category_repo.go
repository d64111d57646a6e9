package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/trivia-backend/internal/domain/entity"
	apperrors "github.com/yourusername/trivia-backend/internal/pkg/errors"
)

// CategoryRepo реализует repository.CategoryRepository
type CategoryRepo struct {
	db *gorm.DB
}

// NewCategoryRepo создает новый репозиторий категорий
func NewCategoryRepo(db *gorm.DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

// CreateBatch создает пакет категорий (используется командой seed)
func (r *CategoryRepo) CreateBatch(ctx context.Context, categories []entity.Category) error {
	if len(categories) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&categories).Error
}

// GetByID возвращает категорию по ID
func (r *CategoryRepo) GetByID(ctx context.Context, id uint) (*entity.Category, error) {
	var category entity.Category
	err := r.db.WithContext(ctx).First(&category, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

// List возвращает все категории, упорядоченные по id
func (r *CategoryRepo) List(ctx context.Context) ([]entity.Category, error) {
	var categories []entity.Category
	if err := r.db.WithContext(ctx).Order("id").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// Count возвращает количество категорий
func (r *CategoryRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Category{}).Count(&count).Error
	return count, err
}
