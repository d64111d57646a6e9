package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yourusername/trivia-backend/internal/config"
	"github.com/yourusername/trivia-backend/internal/domain/entity"
)

// NewPostgresDB создает новое подключение к PostgreSQL
func NewPostgresDB(cfg config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(gormPostgres.Open(cfg.PostgresConnectionString()), &gorm.Config{
		Logger: logger.Default.LogMode(gormLogLevel(cfg.LogLevel)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Настройка пула соединений
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// MigrateDB создает таблицы categories и questions, если их ещё нет
func MigrateDB(db *gorm.DB, log *zap.Logger) error {
	log.Info("Создание таблиц базы данных (если отсутствуют)...")

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("не удалось получить *sql.DB из *gorm.DB: %w", err)
	}

	// Убедимся, что подключение к БД активно
	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("не удалось проверить подключение к БД перед миграцией: %w", err)
	}

	if err := db.AutoMigrate(&entity.Category{}, &entity.Question{}); err != nil {
		return fmt.Errorf("ошибка создания таблиц: %w", err)
	}

	log.Info("Таблицы базы данных готовы")
	return nil
}

// Ping проверяет доступность базы данных
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := GetSQLDB(db)
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// GetSQLDB возвращает базовый *sql.DB из *gorm.DB
func GetSQLDB(gormDB *gorm.DB) (*sql.DB, error) {
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	return sqlDB, nil
}

func gormLogLevel(level string) logger.LogLevel {
	switch level {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
