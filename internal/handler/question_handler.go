package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yourusername/trivia-backend/internal/handler/dto"
	"github.com/yourusername/trivia-backend/internal/service"
)

// QuestionHandler обрабатывает запросы, связанные с вопросами
type QuestionHandler struct {
	questionService *service.QuestionService
	log             *zap.Logger
}

// NewQuestionHandler создает новый обработчик вопросов
func NewQuestionHandler(questionService *service.QuestionService, log *zap.Logger) *QuestionHandler {
	return &QuestionHandler{questionService: questionService, log: log}
}

// ListQuestions обрабатывает GET /questions.
// Без параметра page возвращается весь список, с ним: страница из 10 вопросов.
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	var pagePtr *int
	if page, supplied := pageFromQuery(c); supplied {
		pagePtr = &page
	}

	result, err := h.questionService.ListQuestions(c.Request.Context(), pagePtr)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.QuestionsResponse{
		Success:         true,
		Questions:       dto.NewQuestionListResponse(result.Questions),
		TotalQuestions:  result.Total,
		CurrentCategory: nil,
		Categories:      dto.NewCategoryListResponse(result.Categories),
	})
}

// GetQuestion обрабатывает GET /questions/:id
func (h *QuestionHandler) GetQuestion(c *gin.Context) {
	questionID := c.MustGet("questionID").(uint)

	question, err := h.questionService.GetQuestion(c.Request.Context(), questionID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	formatted := dto.NewQuestionResponse(question)
	c.JSON(http.StatusOK, dto.SingleQuestionResponse{Success: true, Question: &formatted})
}

// DeleteQuestion обрабатывает DELETE /questions/:id
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	questionID := c.MustGet("questionID").(uint)
	page, _ := pageFromQuery(c)

	result, err := h.questionService.DeleteQuestion(c.Request.Context(), questionID, page)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.DeleteResponse{
		Success:        true,
		Deleted:        result.DeletedID,
		Questions:      dto.NewQuestionListResponse(result.Questions),
		TotalQuestions: result.Total,
	})
}

// PostQuestions обрабатывает POST /questions.
// Тело разбирается один раз; ключ search переключает запрос на поиск,
// иначе создаётся новый вопрос. Для поиска есть отдельный маршрут POST /questions/search.
func (h *QuestionHandler) PostQuestions(c *gin.Context) {
	var req dto.QuestionsPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug("Некорректное тело POST /questions", zap.Error(err))
		abortWithStatus(c, http.StatusUnprocessableEntity)
		return
	}

	if req.IsSearch() {
		h.search(c, *req.Search)
		return
	}
	h.create(c, service.CreateQuestionInput{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   req.CategoryString(),
		Difficulty: req.DifficultyInt(),
	})
}

// SearchQuestions обрабатывает POST /questions/search
func (h *QuestionHandler) SearchQuestions(c *gin.Context) {
	var req dto.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithStatus(c, http.StatusUnprocessableEntity)
		return
	}
	term, ok := req.Term()
	if !ok {
		abortWithStatus(c, http.StatusUnprocessableEntity)
		return
	}
	h.search(c, term)
}

func (h *QuestionHandler) search(c *gin.Context, term string) {
	page, _ := pageFromQuery(c)

	result, err := h.questionService.SearchQuestions(c.Request.Context(), term, page)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.SearchResponse{
		Success:        true,
		Questions:      dto.NewQuestionListResponse(result.Questions),
		TotalQuestions: result.Total,
	})
}

func (h *QuestionHandler) create(c *gin.Context, input service.CreateQuestionInput) {
	page, _ := pageFromQuery(c)

	result, err := h.questionService.CreateQuestion(c.Request.Context(), input, page)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateResponse{
		Success:        true,
		Created:        result.CreatedID,
		Questions:      dto.NewQuestionListResponse(result.Questions),
		TotalQuestions: result.Total,
	})
}
