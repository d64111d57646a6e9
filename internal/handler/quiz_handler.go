package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yourusername/trivia-backend/internal/handler/dto"
	"github.com/yourusername/trivia-backend/internal/service"
)

// QuizHandler обрабатывает запросы режима игры
type QuizHandler struct {
	quizService *service.QuizService
	log         *zap.Logger
}

// NewQuizHandler создает новый обработчик викторины
func NewQuizHandler(quizService *service.QuizService, log *zap.Logger) *QuizHandler {
	return &QuizHandler{quizService: quizService, log: log}
}

// NextQuestion обрабатывает POST /quizzes.
// Возвращает случайный ещё не показанный вопрос или question: null.
func (h *QuizHandler) NextQuestion(c *gin.Context) {
	var req dto.QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.Valid() {
		abortWithStatus(c, http.StatusUnprocessableEntity)
		return
	}

	question, err := h.quizService.NextQuestion(c.Request.Context(), uint(*req.QuizCategory.ID), *req.PreviousQuestions)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	resp := dto.SingleQuestionResponse{Success: true}
	if question != nil {
		formatted := dto.NewQuestionResponse(question)
		resp.Question = &formatted
	}
	c.JSON(http.StatusOK, resp)
}
