package handler

import (
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/yourusername/trivia-backend/internal/middleware"
)

// RouterDeps содержит всё, что нужно для сборки HTTP-роутера
type RouterDeps struct {
	Logger *zap.Logger

	Categories *CategoryHandler
	Questions  *QuestionHandler
	Quizzes    *QuizHandler
	Health     *HealthHandler

	// Registry для метрик. Если nil, создаётся собственный реестр.
	Registry *prometheus.Registry

	// RateLimiter ограничивает изменяющие запросы. nil отключает ограничение.
	RateLimiter *middleware.RateLimiter
	RateLimit   middleware.RateLimitConfig

	// TrustedProxies передаются в gin.Engine.SetTrustedProxies.
	TrustedProxies []string
}

// NewRouter собирает gin.Engine со всеми маршрутами.
// Маршруты регистрируются в корне и дублируются под /api.
func NewRouter(deps RouterDeps) *gin.Engine {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	registry := deps.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	router := gin.New()
	router.HandleMethodNotAllowed = true
	if err := router.SetTrustedProxies(deps.TrustedProxies); err != nil {
		log.Warn("Не удалось задать доверенные прокси", zap.Error(err))
	}

	metrics := middleware.NewMetrics(registry)
	router.Use(
		middleware.Recovery(log),
		middleware.RequestID(),
		ginzap.Ginzap(log, time.RFC3339, true),
		metrics.Handler(),
		middleware.ResponseHeaders(),
		middleware.CORS(),
	)

	router.NoRoute(NoRoute)
	router.NoMethod(NoMethod)

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	if deps.Health != nil {
		router.GET("/health", deps.Health.Health)
	}

	registerTriviaRoutes(router.Group(""), deps)
	registerTriviaRoutes(router.Group("/api"), deps)

	return router
}

func registerTriviaRoutes(group *gin.RouterGroup, deps RouterDeps) {
	mutating := func(h gin.HandlerFunc) []gin.HandlerFunc {
		if deps.RateLimiter == nil {
			return []gin.HandlerFunc{h}
		}
		return []gin.HandlerFunc{deps.RateLimiter.Limit(deps.RateLimit), h}
	}

	group.GET("/categories", deps.Categories.ListCategories)
	group.GET("/categories/:id/questions",
		middleware.ExtractUintParam("id", "categoryID"),
		deps.Categories.GetCategoryQuestions,
	)

	questions := group.Group("/questions")
	{
		questions.GET("", deps.Questions.ListQuestions)
		questions.POST("", mutating(deps.Questions.PostQuestions)...)
		questions.POST("/search", mutating(deps.Questions.SearchQuestions)...)
		questions.GET("/export", deps.Questions.ExportQuestions)

		withID := questions.Group("/:id")
		withID.Use(middleware.ExtractUintParam("id", "questionID"))
		{
			withID.GET("", deps.Questions.GetQuestion)
			withID.DELETE("", mutating(deps.Questions.DeleteQuestion)...)
		}
	}

	group.POST("/quizzes", deps.Quizzes.NextQuestion)
}
