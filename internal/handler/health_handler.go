package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yourusername/trivia-backend/internal/handler/dto"
)

// PingFunc проверяет доступность хранилища
type PingFunc func(ctx context.Context) error

const healthPingTimeout = 2 * time.Second

// HealthHandler отвечает на проверки живости сервиса
type HealthHandler struct {
	ping PingFunc
	log  *zap.Logger
}

// NewHealthHandler создает обработчик /health. ping может быть nil.
func NewHealthHandler(ping PingFunc, log *zap.Logger) *HealthHandler {
	return &HealthHandler{ping: ping, log: log}
}

// Health обрабатывает GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	if h.ping != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthPingTimeout)
		defer cancel()
		if err := h.ping(ctx); err != nil {
			h.log.Error("База данных недоступна", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Success: false, Status: "unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, dto.HealthResponse{Success: true, Status: "ok"})
}
