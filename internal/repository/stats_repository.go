package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

type statsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) CountPosts(ctx context.Context) (int, error) {
	var count int

	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM posts`)
	if err != nil {
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}

	return count, nil
}

func (r *statsRepository) DatabaseTime(ctx context.Context) (time.Time, error) {
	var now time.Time

	err := r.db.GetContext(ctx, &now, `SELECT now()`)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to read database time: %w", err)
	}

	return now, nil
}
