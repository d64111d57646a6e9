package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/yourusername/trivia-backend/internal/handler/dto"
)

// RateLimitConfig содержит настройки rate limiting
type RateLimitConfig struct {
	// MaxRequests: максимальное количество запросов за Window
	MaxRequests int
	// Window: временное окно для подсчёта запросов
	Window time.Duration
	// KeyPrefix: префикс для ключей в Redis
	KeyPrefix string
}

// RateLimitStore: команды Redis, которые нужны ограничителю.
// redis.UniversalClient реализует этот интерфейс.
type RateLimitStore interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
	TTL(ctx context.Context, key string) *redis.DurationCmd
}

// RateLimiter ограничивает частоту запросов счётчиком с фиксированным окном в Redis
type RateLimiter struct {
	store RateLimitStore
	log   *zap.Logger
}

// NewRateLimiter создает новый RateLimiter
func NewRateLimiter(store RateLimitStore, log *zap.Logger) *RateLimiter {
	return &RateLimiter{store: store, log: log}
}

// Limit возвращает Gin middleware с заданной конфигурацией.
// Ключ формируется из IP + шаблон маршрута + метод.
// При ошибке Redis запрос пропускается (fail-open).
func (rl *RateLimiter) Limit(cfg RateLimitConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		key := fmt.Sprintf("%s:%s:%s:%s", cfg.KeyPrefix, clientIP, c.Request.Method, path)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		count, err := rl.store.Incr(ctx, key).Result()
		if err != nil {
			rl.log.Warn("Redis недоступен, запрос пропущен без ограничения", zap.String("key", key), zap.Error(err))
			c.Next()
			return
		}

		// Первый запрос в окне: устанавливаем TTL
		if count == 1 {
			if err := rl.store.Expire(ctx, key, cfg.Window).Err(); err != nil {
				rl.log.Warn("Не удалось установить TTL", zap.String("key", key), zap.Error(err))
			}
		}

		remaining := cfg.MaxRequests - int(count)
		if remaining < 0 {
			remaining = 0
		}

		ttl, err := rl.store.TTL(ctx, key).Result()
		if err != nil {
			rl.log.Debug("Не удалось получить TTL, используется длина окна", zap.String("key", key), zap.Error(err))
		}
		retryAfter := int(ttl.Seconds())
		if retryAfter <= 0 {
			retryAfter = int(cfg.Window.Seconds())
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.MaxRequests))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.Itoa(retryAfter))

		if int(count) > cfg.MaxRequests {
			rl.log.Info("Превышен лимит запросов",
				zap.String("ip", clientIP),
				zap.String("path", path),
				zap.Int64("count", count),
				zap.Int("limit", cfg.MaxRequests),
			)
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponse(http.StatusTooManyRequests))
			return
		}

		c.Next()
	}
}
