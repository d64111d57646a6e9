package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// CategoryValue: значение category в теле запроса.
// Принимает JSON-число (3) или строку ("3") и хранит его в текстовом виде,
// как в колонке questions.category.
type CategoryValue string

// UnmarshalJSON реализует json.Unmarshaler
func (v *CategoryValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = CategoryValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("category must be a number or a string: %w", err)
	}
	*v = CategoryValue(n.String())
	return nil
}

// FlexibleID: неотрицательный целый идентификатор, переданный числом или строкой
type FlexibleID uint

// UnmarshalJSON реализует json.Unmarshaler
func (id *FlexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
	}
	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return fmt.Errorf("id must be a non-negative integer, got %s", string(data))
	}
	*id = FlexibleID(parsed)
	return nil
}

// FlexibleInt: целое число, переданное числом (3) или строкой ("3")
type FlexibleInt int

// UnmarshalJSON реализует json.Unmarshaler
func (n *FlexibleInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("value must be an integer, got %s", string(data))
	}
	*n = FlexibleInt(parsed)
	return nil
}

// QuestionsPostRequest: тело POST /questions.
// Ненулевой search выбирает поиск выбирает поиск, иначе выполняется создание вопроса.
type QuestionsPostRequest struct {
	Search     *string        `json:"search"`
	Question   *string        `json:"question"`
	Answer     *string        `json:"answer"`
	Category   *CategoryValue `json:"category"`
	Difficulty *FlexibleInt   `json:"difficulty"`
}

// IsSearch сообщает, что запрос является поиском
func (r *QuestionsPostRequest) IsSearch() bool {
	return r.Search != nil
}

// CategoryString возвращает category как *string для сервиса
func (r *QuestionsPostRequest) CategoryString() *string {
	if r.Category == nil {
		return nil
	}
	s := string(*r.Category)
	return &s
}

// DifficultyInt возвращает difficulty как *int для сервиса
func (r *QuestionsPostRequest) DifficultyInt() *int {
	if r.Difficulty == nil {
		return nil
	}
	d := int(*r.Difficulty)
	return &d
}

// SearchRequest: тело POST /questions/search
type SearchRequest struct {
	SearchTerm *string `json:"searchTerm"`
	Search     *string `json:"search"`
}

// Term возвращает искомую строку; поддерживаются ключи search и searchTerm
func (r *SearchRequest) Term() (string, bool) {
	if r.Search != nil {
		return *r.Search, true
	}
	if r.SearchTerm != nil {
		return *r.SearchTerm, true
	}
	return "", false
}

// QuizCategory: выбранная категория в режиме игры; id 0 означает все категории
type QuizCategory struct {
	ID   *FlexibleID `json:"id"`
	Type string      `json:"type"`
}

// QuizRequest: тело POST /quizzes
type QuizRequest struct {
	QuizCategory      *QuizCategory `json:"quiz_category"`
	PreviousQuestions *[]uint       `json:"previous_questions"`
}

// Valid проверяет наличие обязательных полей
func (r *QuizRequest) Valid() bool {
	return r.QuizCategory != nil && r.QuizCategory.ID != nil && r.PreviousQuestions != nil
}
