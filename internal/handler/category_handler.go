package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yourusername/trivia-backend/internal/handler/dto"
	"github.com/yourusername/trivia-backend/internal/service"
)

// CategoryHandler обрабатывает запросы, связанные с категориями
type CategoryHandler struct {
	categoryService *service.CategoryService
	questionService *service.QuestionService
	log             *zap.Logger
}

// NewCategoryHandler создает новый обработчик категорий
func NewCategoryHandler(
	categoryService *service.CategoryService,
	questionService *service.QuestionService,
	log *zap.Logger,
) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		questionService: questionService,
		log:             log,
	}
}

// ListCategories обрабатывает GET /categories
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.CategoriesResponse{
		Success:         true,
		Categories:      dto.NewCategoryListResponse(categories),
		TotalCategories: len(categories),
	})
}

// GetCategoryQuestions обрабатывает GET /categories/:id/questions
func (h *CategoryHandler) GetCategoryQuestions(c *gin.Context) {
	categoryID := c.MustGet("categoryID").(uint)
	page, _ := pageFromQuery(c)

	result, err := h.questionService.QuestionsByCategory(c.Request.Context(), int64(categoryID), page)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	current := dto.NewCategoryResponse(result.Category)
	c.JSON(http.StatusOK, dto.QuestionsResponse{
		Success:         true,
		Questions:       dto.NewQuestionListResponse(result.Questions),
		TotalQuestions:  result.Total,
		CurrentCategory: &current,
		Categories:      dto.NewCategoryListResponse(result.Categories),
	})
}
