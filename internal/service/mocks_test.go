package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/yourusername/trivia-backend/internal/domain/entity"
)

// ============================================================================
// Моки репозиториев для тестов сервисов
// ============================================================================

// MockQuestionRepository реализует repository.QuestionRepository
type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) Create(ctx context.Context, question *entity.Question) error {
	args := m.Called(ctx, question)
	return args.Error(0)
}

func (m *MockQuestionRepository) CreateBatch(ctx context.Context, questions []entity.Question) error {
	args := m.Called(ctx, questions)
	return args.Error(0)
}

func (m *MockQuestionRepository) GetByID(ctx context.Context, id uint) (*entity.Question, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Question), args.Error(1)
}

func (m *MockQuestionRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockQuestionRepository) List(ctx context.Context) ([]entity.Question, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Question), args.Error(1)
}

func (m *MockQuestionRepository) ListByCategory(ctx context.Context, categoryID uint) ([]entity.Question, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Question), args.Error(1)
}

func (m *MockQuestionRepository) Search(ctx context.Context, term string) ([]entity.Question, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Question), args.Error(1)
}

func (m *MockQuestionRepository) ListRandom(ctx context.Context, categoryID *uint) ([]entity.Question, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Question), args.Error(1)
}

func (m *MockQuestionRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockCategoryRepository реализует repository.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) CreateBatch(ctx context.Context, categories []entity.Category) error {
	args := m.Called(ctx, categories)
	return args.Error(0)
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id uint) (*entity.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Category), args.Error(1)
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]entity.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Category), args.Error(1)
}

func (m *MockCategoryRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// makeQuestions создает n вопросов с id 1..n
func makeQuestions(n int) []entity.Question {
	questions := make([]entity.Question, n)
	for i := range questions {
		questions[i] = entity.Question{ID: uint(i + 1), Question: "q", Answer: "a", Category: "1", Difficulty: 1}
	}
	return questions
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
