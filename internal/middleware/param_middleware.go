package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-backend/internal/handler/dto"
)

// ExtractUintParam создает middleware для извлечения и валидации числового параметра URL.
// paramName - имя параметра в URL (например, "id").
// contextKey - ключ, под которым значение будет сохранено в контексте Gin.
// Нечисловой параметр означает, что маршрут не найден, поэтому ответ 404.
func ExtractUintParam(paramName, contextKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param(paramName), 10, 32)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound))
			return
		}
		c.Set(contextKey, uint(id))
		c.Next()
	}
}
