package dto

import (
	"github.com/yourusername/trivia-backend/internal/domain/entity"
)

// QuestionResponse: форматированный вопрос для ответа клиенту
type QuestionResponse struct {
	ID         uint   `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   string `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// CategoryResponse: форматированная категория для ответа клиенту
type CategoryResponse struct {
	ID   uint   `json:"id"`
	Type string `json:"type"`
}

// NewQuestionResponse создает DTO для вопроса
func NewQuestionResponse(q *entity.Question) QuestionResponse {
	return QuestionResponse{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}
}

// NewQuestionListResponse создает список DTO. Пустой вход даёт [] в JSON, а не null.
func NewQuestionListResponse(questions []entity.Question) []QuestionResponse {
	result := make([]QuestionResponse, 0, len(questions))
	for i := range questions {
		result = append(result, NewQuestionResponse(&questions[i]))
	}
	return result
}

// NewCategoryResponse создает DTO для категории
func NewCategoryResponse(c *entity.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Type: c.Type}
}

// NewCategoryListResponse создает список DTO категорий
func NewCategoryListResponse(categories []entity.Category) []CategoryResponse {
	result := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		result = append(result, NewCategoryResponse(&categories[i]))
	}
	return result
}

// CategoriesResponse: ответ GET /categories
type CategoriesResponse struct {
	Success         bool               `json:"success"`
	Categories      []CategoryResponse `json:"categories"`
	TotalCategories int                `json:"total_categories"`
}

// QuestionsResponse: ответ списка вопросов (общий и по категории).
// CurrentCategory сериализуется в null, если категория не выбрана.
type QuestionsResponse struct {
	Success         bool               `json:"success"`
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int                `json:"total_questions"`
	CurrentCategory *CategoryResponse  `json:"current_category"`
	Categories      []CategoryResponse `json:"categories"`
}

// SingleQuestionResponse: ответ с одним вопросом; Question == nil означает null
type SingleQuestionResponse struct {
	Success  bool              `json:"success"`
	Question *QuestionResponse `json:"question"`
}

// SearchResponse: ответ поиска вопросов
type SearchResponse struct {
	Success        bool               `json:"success"`
	Questions      []QuestionResponse `json:"questions"`
	TotalQuestions int                `json:"total_questions"`
}

// DeleteResponse: ответ удаления вопроса
type DeleteResponse struct {
	Success        bool               `json:"success"`
	Deleted        uint               `json:"deleted"`
	Questions      []QuestionResponse `json:"questions"`
	TotalQuestions int                `json:"total_questions"`
}

// CreateResponse: ответ создания вопроса
type CreateResponse struct {
	Success        bool               `json:"success"`
	Created        uint               `json:"created"`
	Questions      []QuestionResponse `json:"questions"`
	TotalQuestions int                `json:"total_questions"`
}

// HealthResponse: ответ GET /health
type HealthResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
}
