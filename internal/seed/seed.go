// Package seed содержит стартовый набор категорий и вопросов.
// Используется командой cmd/seed и тестами как эталонный датасет.
package seed

import (
	"context"
	"fmt"

	"github.com/yourusername/trivia-backend/internal/domain/entity"
	"github.com/yourusername/trivia-backend/internal/domain/repository"
)

// Categories возвращает шесть стандартных категорий
func Categories() []entity.Category {
	return []entity.Category{
		{ID: 1, Type: "Science"},
		{ID: 2, Type: "Art"},
		{ID: 3, Type: "Geography"},
		{ID: 4, Type: "History"},
		{ID: 5, Type: "Entertainment"},
		{ID: 6, Type: "Sports"},
	}
}

// Questions возвращает классический набор из 19 вопросов
func Questions() []entity.Question {
	return []entity.Question{
		{Question: "What movie earned Tom Hanks his third straight Oscar nomination, in 1996?", Answer: "Apollo 13", Category: "5", Difficulty: 4},
		{Question: "What actor did author Anne Rice first denounce, then praise in the role of her beloved Lestat?", Answer: "Tom Cruise", Category: "5", Difficulty: 4},
		{Question: "Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?", Answer: "Maya Angelou", Category: "4", Difficulty: 2},
		{Question: "What was the title of the 1990 fantasy directed by Tim Burton about a young man with multi-bladed appendages?", Answer: "Edward Scissorhands", Category: "5", Difficulty: 3},
		{Question: "What boxer's original name is Cassius Clay?", Answer: "Muhammad Ali", Category: "4", Difficulty: 1},
		{Question: "Which is the only team to play in every soccer World Cup tournament?", Answer: "Brazil", Category: "6", Difficulty: 3},
		{Question: "Which country won the first ever soccer World Cup in 1930?", Answer: "Uruguay", Category: "6", Difficulty: 4},
		{Question: "Who invented Peanut Butter?", Answer: "George Washington Carver", Category: "4", Difficulty: 2},
		{Question: "What is the largest lake in Africa?", Answer: "Lake Victoria", Category: "3", Difficulty: 2},
		{Question: "In which royal palace would you find the Hall of Mirrors?", Answer: "The Palace of Versailles", Category: "3", Difficulty: 3},
		{Question: "The Taj Mahal is located in which Indian city?", Answer: "Agra", Category: "3", Difficulty: 2},
		{Question: "Which Dutch graphic artist–initials M C was a creator of optical illusions?", Answer: "Escher", Category: "2", Difficulty: 1},
		{Question: "La Giaconda is better known as what?", Answer: "Mona Lisa", Category: "2", Difficulty: 3},
		{Question: "How many paintings did Van Gogh sell in his lifetime?", Answer: "One", Category: "2", Difficulty: 4},
		{Question: "Which American artist was a pioneer of Abstract Expressionism, and a leading exponent of action painting?", Answer: "Jackson Pollock", Category: "2", Difficulty: 2},
		{Question: "What is the heaviest organ in the human body?", Answer: "The Liver", Category: "1", Difficulty: 4},
		{Question: "Who discovered penicillin?", Answer: "Alexander Fleming", Category: "1", Difficulty: 3},
		{Question: "Hematology is a branch of medicine involving the study of what?", Answer: "Blood", Category: "1", Difficulty: 4},
		{Question: "Which dung beetle was worshipped by the ancient Egyptians?", Answer: "Scarab", Category: "4", Difficulty: 4},
	}
}

// Result описывает, сколько записей было вставлено
type Result struct {
	Categories int
	Questions  int
}

// Run заполняет пустые таблицы стартовыми данными.
// Непустые таблицы не трогаются, поэтому повторный запуск безопасен.
func Run(ctx context.Context, categoryRepo repository.CategoryRepository, questionRepo repository.QuestionRepository) (Result, error) {
	var res Result

	categoryCount, err := categoryRepo.Count(ctx)
	if err != nil {
		return res, fmt.Errorf("count categories: %w", err)
	}
	if categoryCount == 0 {
		categories := Categories()
		if err := categoryRepo.CreateBatch(ctx, categories); err != nil {
			return res, fmt.Errorf("insert categories: %w", err)
		}
		res.Categories = len(categories)
	}

	questionCount, err := questionRepo.Count(ctx)
	if err != nil {
		return res, fmt.Errorf("count questions: %w", err)
	}
	if questionCount == 0 {
		questions := Questions()
		if err := questionRepo.CreateBatch(ctx, questions); err != nil {
			return res, fmt.Errorf("insert questions: %w", err)
		}
		res.Questions = len(questions)
	}

	return res, nil
}
