package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/yourusername/trivia-backend/internal/config"
	pgRepo "github.com/yourusername/trivia-backend/internal/repository/postgres"
	"github.com/yourusername/trivia-backend/internal/seed"
	"github.com/yourusername/trivia-backend/pkg/database"
	"github.com/yourusername/trivia-backend/pkg/logger"
)

// seed создаёт таблицы и заполняет пустую базу стандартными категориями и вопросами
func main() {
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "seed: load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Server.Mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "seed: init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	db, err := database.NewPostgresDB(cfg.Database)
	if err != nil {
		log.Fatal("Не удалось подключиться к базе данных", zap.Error(err))
	}
	if err := database.MigrateDB(db, log); err != nil {
		log.Fatal("Не удалось создать таблицы", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, err := seed.Run(ctx, pgRepo.NewCategoryRepo(db), pgRepo.NewQuestionRepo(db))
	if err != nil {
		log.Fatal("Ошибка заполнения базы", zap.Error(err))
	}
	log.Info("Заполнение завершено",
		zap.Int("categories", result.Categories),
		zap.Int("questions", result.Questions),
	)
}
