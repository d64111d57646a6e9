package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yourusername/trivia-backend/internal/handler/dto"
	"github.com/yourusername/trivia-backend/internal/middleware"
	apperrors "github.com/yourusername/trivia-backend/internal/pkg/errors"
)

// respondError переводит ошибку сервиса в HTTP-статус и пишет конверт ошибки
func respondError(c *gin.Context, log *zap.Logger, err error) {
	status := apperrors.Status(err)
	fields := []zap.Field{
		zap.Error(err),
		zap.Int("status", status),
		zap.String("path", c.Request.URL.Path),
		zap.String("request_id", c.GetString(middleware.RequestIDKey)),
	}
	if status >= http.StatusInternalServerError {
		log.Error("Внутренняя ошибка при обработке запроса", fields...)
	} else {
		log.Debug("Запрос отклонён", fields...)
	}
	abortWithStatus(c, status)
}

// abortWithStatus прерывает обработку и отвечает конвертом ошибки
func abortWithStatus(c *gin.Context, status int) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(status))
}

// NoRoute отвечает конвертом 404 на неизвестный маршрут
func NoRoute(c *gin.Context) {
	abortWithStatus(c, http.StatusNotFound)
}

// NoMethod отвечает конвертом 405, если маршрут есть, но метод не поддерживается
func NoMethod(c *gin.Context) {
	abortWithStatus(c, http.StatusMethodNotAllowed)
}

// pageFromQuery разбирает параметр page.
// supplied == false, если параметр не передан или пуст.
// Нечисловое значение трактуется как первая страница.
func pageFromQuery(c *gin.Context) (page int, supplied bool) {
	raw, ok := c.GetQuery("page")
	if !ok || raw == "" {
		return 1, false
	}
	page, err := strconv.Atoi(raw)
	if err != nil {
		return 1, true
	}
	return page, true
}
