package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/yourusername/trivia-backend/internal/config"
	"github.com/yourusername/trivia-backend/internal/handler"
	"github.com/yourusername/trivia-backend/internal/middleware"
	pgRepo "github.com/yourusername/trivia-backend/internal/repository/postgres"
	"github.com/yourusername/trivia-backend/internal/service"
	"github.com/yourusername/trivia-backend/pkg/database"
	"github.com/yourusername/trivia-backend/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "trivia-api: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// .env необязателен, переменные окружения имеют приоритет
	_ = godotenv.Load()

	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.Server.Mode)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()
	log.Info("Конфигурация загружена", zap.String("path", configPath), zap.String("mode", cfg.Server.Mode))

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	isProduction := gin.Mode() == gin.ReleaseMode

	// Инициализируем подключение к PostgreSQL
	db, err := database.NewPostgresDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	sqlDB, err := database.GetSQLDB(db)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	// Создаём таблицы, если их нет
	if err := database.MigrateDB(db, log); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	// Redis нужен только для rate limiting
	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		redisClient, err := database.NewUniversalRedisClient(context.Background(), cfg.Redis)
		if err != nil {
			return fmt.Errorf("connect to redis: %w", err)
		}
		defer redisClient.Close()
		log.Info("Подключение к Redis установлено", zap.String("mode", cfg.Redis.Mode))
		rateLimiter = middleware.NewRateLimiter(redisClient, log)
	}

	// Инициализируем репозитории
	questionRepo := pgRepo.NewQuestionRepo(db)
	categoryRepo := pgRepo.NewCategoryRepo(db)

	// Инициализируем сервисы
	questionService := service.NewQuestionService(questionRepo, categoryRepo, cfg.Trivia.EnforceCategoryRef, log)
	categoryService := service.NewCategoryService(categoryRepo)
	quizService := service.NewQuizService(questionRepo, log)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(sqlDB, cfg.Database.DBName),
	)

	// В production не доверяем прокси-заголовкам, в development доверяем localhost
	var trustedProxies []string
	if !isProduction {
		trustedProxies = []string{"127.0.0.1", "::1"}
	}

	router := handler.NewRouter(handler.RouterDeps{
		Logger:     log,
		Categories: handler.NewCategoryHandler(categoryService, questionService, log),
		Questions:  handler.NewQuestionHandler(questionService, log),
		Quizzes:    handler.NewQuizHandler(quizService, log),
		Health: handler.NewHealthHandler(func(ctx context.Context) error {
			return database.Ping(ctx, db)
		}, log),
		Registry:    registry,
		RateLimiter: rateLimiter,
		RateLimit: middleware.RateLimitConfig{
			MaxRequests: cfg.RateLimit.MaxRequests,
			Window:      time.Duration(cfg.RateLimit.WindowSec) * time.Second,
			KeyPrefix:   "ratelimit:trivia",
		},
		TrustedProxies: trustedProxies,
	})

	// Настраиваем HTTP сервер с тайм-аутами для защиты от slow client attacks
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Запуск сервера", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err, ok := <-serverErr:
		if ok {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case sig := <-quit:
		log.Info("Остановка сервера", zap.String("signal", sig.String()))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Сервер остановлен")
	return nil
}
