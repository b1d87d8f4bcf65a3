package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"blogapi/internal/models"
)

// ErrPostNotFound is wrapped by every store call that addresses an unknown id.
var ErrPostNotFound = errors.New("post not found")

type PostRepository interface {
	Create(ctx context.Context, in models.PostInput) (*models.Post, error)
	GetByID(ctx context.Context, id int64) (*models.Post, error)
	List(ctx context.Context) ([]models.Post, error)
	Update(ctx context.Context, id int64, in models.PostInput) (*models.Post, error)
	Delete(ctx context.Context, id int64) (*models.Post, error)
}

type StatsRepository interface {
	CountPosts(ctx context.Context) (int, error)
	DatabaseTime(ctx context.Context) (time.Time, error)
}

type Repository struct {
	Post  PostRepository
	Stats StatsRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		Post:  NewPostRepository(db),
		Stats: NewStatsRepository(db),
	}
}
