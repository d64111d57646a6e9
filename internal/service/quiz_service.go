package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/yourusername/trivia-backend/internal/domain/entity"
	"github.com/yourusername/trivia-backend/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-backend/internal/pkg/errors"
)

// AllCategories: идентификатор quiz_category, означающий «без фильтра по категории»
const AllCategories uint = 0

// QuizService выбирает вопросы для режима игры
type QuizService struct {
	questionRepo repository.QuestionRepository
	log          *zap.Logger
}

// NewQuizService создает новый сервис викторины
func NewQuizService(questionRepo repository.QuestionRepository, log *zap.Logger) *QuizService {
	return &QuizService{questionRepo: questionRepo, log: log}
}

// NextQuestion возвращает случайный вопрос категории, которого нет в previous.
// Если все вопросы уже были, возвращает nil без ошибки.
// Состояние между вызовами не хранится: клиент сам присылает previous.
func (s *QuizService) NextQuestion(ctx context.Context, categoryID uint, previous []uint) (*entity.Question, error) {
	var filter *uint
	if categoryID != AllCategories {
		filter = &categoryID
	}

	candidates, err := s.questionRepo.ListRandom(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list quiz candidates: %w: %w", apperrors.ErrUnprocessable, err)
	}

	seen := make(map[uint]struct{}, len(previous))
	for _, id := range previous {
		seen[id] = struct{}{}
	}

	for i := range candidates {
		if _, ok := seen[candidates[i].ID]; !ok {
			return &candidates[i], nil
		}
	}

	s.log.Debug("Вопросы для викторины закончились",
		zap.Uint("category_id", categoryID),
		zap.Int("previous", len(previous)),
		zap.Int("candidates", len(candidates)),
	)
	return nil, nil
}
