package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/yourusername/trivia-backend/internal/pkg/errors"
	"github.com/yourusername/trivia-backend/internal/repository/postgres"
	"github.com/yourusername/trivia-backend/internal/testutil"
)

func TestCategoryRepo_List(t *testing.T) {
	ctx := context.Background()
	repo := postgres.NewCategoryRepo(testutil.NewSeededDB(t))

	categories, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 6)
	assert.Equal(t, "Science", categories[0].Type)
	assert.Equal(t, "Sports", categories[5].Type)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 6, count)
}

func TestCategoryRepo_GetByID(t *testing.T) {
	ctx := context.Background()
	repo := postgres.NewCategoryRepo(testutil.NewSeededDB(t))

	category, err := repo.GetByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Geography", category.Type)

	_, err = repo.GetByID(ctx, 99987699)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
