// Package testutil собирает тестовое окружение поверх SQLite в памяти.
package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yourusername/trivia-backend/internal/repository/postgres"
	"github.com/yourusername/trivia-backend/internal/seed"
	"github.com/yourusername/trivia-backend/pkg/database"
)

// NewDB открывает пустую SQLite-базу в памяти с созданными таблицами.
// Пул ограничен одним соединением: у каждого соединения ":memory:" своя база.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "Failed to create test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.MigrateDB(db, zap.NewNop()))
	return db
}

// NewSeededDB открывает тестовую базу и заполняет её стандартным датасетом
func NewSeededDB(t *testing.T) *gorm.DB {
	t.Helper()

	db := NewDB(t)
	_, err := seed.Run(context.Background(), postgres.NewCategoryRepo(db), postgres.NewQuestionRepo(db))
	require.NoError(t, err, "Failed to seed test database")
	return db
}
