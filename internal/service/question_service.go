package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/yourusername/trivia-backend/internal/domain/entity"
	"github.com/yourusername/trivia-backend/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-backend/internal/pkg/errors"
)

// QuestionService предоставляет методы для работы с вопросами
type QuestionService struct {
	questionRepo       repository.QuestionRepository
	categoryRepo       repository.CategoryRepository
	enforceCategoryRef bool
	log                *zap.Logger
}

// NewQuestionService создает новый сервис вопросов.
// enforceCategoryRef включает проверку существования категории при создании вопроса.
func NewQuestionService(
	questionRepo repository.QuestionRepository,
	categoryRepo repository.CategoryRepository,
	enforceCategoryRef bool,
	log *zap.Logger,
) *QuestionService {
	return &QuestionService{
		questionRepo:       questionRepo,
		categoryRepo:       categoryRepo,
		enforceCategoryRef: enforceCategoryRef,
		log:                log,
	}
}

// QuestionPage: страница вопросов и общее количество записей в выборке
type QuestionPage struct {
	Questions []entity.Question
	Total     int
}

// QuestionList: ответ для главного списка вопросов
type QuestionList struct {
	QuestionPage
	Categories []entity.Category
}

// CategoryQuestions: вопросы одной категории
type CategoryQuestions struct {
	QuestionPage
	Category   *entity.Category
	Categories []entity.Category
}

// DeleteResult: результат удаления вопроса
type DeleteResult struct {
	QuestionPage
	DeletedID uint
}

// CreateResult: результат создания вопроса
type CreateResult struct {
	QuestionPage
	CreatedID uint
}

// CreateQuestionInput: данные нового вопроса.
// nil означает, что поле не передано (в том числе null в JSON).
type CreateQuestionInput struct {
	Question   *string
	Answer     *string
	Category   *string
	Difficulty *int
}

// ListQuestions возвращает вопросы по возрастанию id вместе со списком категорий.
// Если page == nil, возвращается вся коллекция без пагинации.
func (s *QuestionService) ListQuestions(ctx context.Context, page *int) (*QuestionList, error) {
	questions, err := s.questionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w: %w", apperrors.ErrInternal, err)
	}
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w: %w", apperrors.ErrInternal, err)
	}

	current := questions
	if page != nil {
		current = Paginate(questions, *page)
	}

	return &QuestionList{
		QuestionPage: QuestionPage{Questions: current, Total: len(questions)},
		Categories:   categories,
	}, nil
}

// GetQuestion возвращает вопрос по ID
func (s *QuestionService) GetQuestion(ctx context.Context, id uint) (*entity.Question, error) {
	question, err := s.questionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("question %d: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("get question %d: %w: %w", id, apperrors.ErrInternal, err)
	}
	return question, nil
}

// DeleteQuestion удаляет вопрос и возвращает страницу оставшихся вопросов
func (s *QuestionService) DeleteQuestion(ctx context.Context, id uint, page int) (*DeleteResult, error) {
	if _, err := s.GetQuestion(ctx, id); err != nil {
		return nil, err
	}

	if err := s.questionRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Вопрос удалили параллельным запросом между проверкой и удалением
			return nil, fmt.Errorf("delete question %d: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("delete question %d: %w: %w", id, apperrors.ErrUnprocessable, err)
	}
	s.log.Info("Вопрос удалён", zap.Uint("question_id", id))

	remaining, err := s.questionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list questions after delete: %w: %w", apperrors.ErrUnprocessable, err)
	}

	return &DeleteResult{
		QuestionPage: QuestionPage{Questions: Paginate(remaining, page), Total: len(remaining)},
		DeletedID:    id,
	}, nil
}

// SearchQuestions ищет вопросы по подстроке без учёта регистра
func (s *QuestionService) SearchQuestions(ctx context.Context, term string, page int) (*QuestionPage, error) {
	found, err := s.questionRepo.Search(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("search questions %q: %w: %w", term, apperrors.ErrUnprocessable, err)
	}
	return &QuestionPage{Questions: Paginate(found, page), Total: len(found)}, nil
}

// CreateQuestion проверяет входные данные, сохраняет вопрос и возвращает страницу вопросов
func (s *QuestionService) CreateQuestion(ctx context.Context, input CreateQuestionInput, page int) (*CreateResult, error) {
	if input.Question == nil || input.Answer == nil || input.Category == nil || input.Difficulty == nil {
		return nil, fmt.Errorf("question, answer, category and difficulty are required: %w", apperrors.ErrUnprocessable)
	}

	question := &entity.Question{
		Question:   *input.Question,
		Answer:     *input.Answer,
		Category:   *input.Category,
		Difficulty: *input.Difficulty,
	}

	if s.enforceCategoryRef {
		if err := s.checkCategoryRef(ctx, question); err != nil {
			return nil, err
		}
	}

	if err := s.questionRepo.Create(ctx, question); err != nil {
		return nil, fmt.Errorf("insert question: %w: %w", apperrors.ErrUnprocessable, err)
	}
	s.log.Info("Вопрос создан", zap.Uint("question_id", question.ID), zap.String("category", question.Category))

	questions, err := s.questionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list questions after insert: %w: %w", apperrors.ErrUnprocessable, err)
	}

	return &CreateResult{
		QuestionPage: QuestionPage{Questions: Paginate(questions, page), Total: len(questions)},
		CreatedID:    question.ID,
	}, nil
}

// checkCategoryRef проверяет, что question.Category ссылается на существующую категорию
func (s *QuestionService) checkCategoryRef(ctx context.Context, question *entity.Question) error {
	categoryID, ok := question.CategoryID()
	if !ok {
		return fmt.Errorf("category %q is not a valid id: %w", question.Category, apperrors.ErrUnprocessable)
	}
	if _, err := s.categoryRepo.GetByID(ctx, categoryID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("category %d does not exist: %w", categoryID, apperrors.ErrUnprocessable)
		}
		return fmt.Errorf("check category %d: %w: %w", categoryID, apperrors.ErrUnprocessable, err)
	}
	return nil
}

// QuestionsByCategory возвращает страницу вопросов категории.
// id < 1 и несуществующая категория дают ErrNotFound.
func (s *QuestionService) QuestionsByCategory(ctx context.Context, categoryID int64, page int) (*CategoryQuestions, error) {
	if categoryID < 1 {
		return nil, fmt.Errorf("category %d: %w", categoryID, apperrors.ErrNotFound)
	}
	id := uint(categoryID)

	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("category %d: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("get category %d: %w: %w", id, apperrors.ErrInternal, err)
	}

	questions, err := s.questionRepo.ListByCategory(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list questions of category %d: %w: %w", id, apperrors.ErrInternal, err)
	}
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w: %w", apperrors.ErrInternal, err)
	}

	return &CategoryQuestions{
		QuestionPage: QuestionPage{Questions: Paginate(questions, page), Total: len(questions)},
		Category:     category,
		Categories:   categories,
	}, nil
}

// ExportQuestions возвращает все вопросы и справочник названий категорий для выгрузки
func (s *QuestionService) ExportQuestions(ctx context.Context) ([]entity.Question, map[string]string, error) {
	questions, err := s.questionRepo.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("list questions for export: %w: %w", apperrors.ErrInternal, err)
	}
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("list categories for export: %w: %w", apperrors.ErrInternal, err)
	}

	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[entity.CategoryRef(c.ID)] = c.Type
	}
	return questions, names, nil
}
