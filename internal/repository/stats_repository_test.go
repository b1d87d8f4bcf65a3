package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsRepository_CountPosts(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewStatsRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM posts`)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

		count, err := repo.CountPosts(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 4, count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewStatsRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM posts`)).
			WillReturnError(errors.New("connection refused"))

		count, err := repo.CountPosts(context.Background())

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to count posts")
		assert.Zero(t, count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestStatsRepository_DatabaseTime(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewStatsRepository(db)
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT now()`)).
		WillReturnRows(sqlmock.NewRows([]string{"now"}).AddRow(now))

	got, err := repo.DatabaseTime(context.Background())

	require.NoError(t, err)
	assert.True(t, now.Equal(got))
	assert.NoError(t, mock.ExpectationsWereMet())
}
