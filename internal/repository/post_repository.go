package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"blogapi/internal/models"
)

type PostRepositoryImpl struct {
	DB *sqlx.DB
}

// postArgs binds the editable fields together with the row id for named queries.
type postArgs struct {
	ID int64 `db:"id"`
	models.PostInput
}

func NewPostRepository(db *sqlx.DB) *PostRepositoryImpl {
	return &PostRepositoryImpl{DB: db}
}

// Create inserts one row. id, created_at and updated_at come from column
// defaults evaluated in the same statement, so both timestamps are equal.
func (r *PostRepositoryImpl) Create(ctx context.Context, in models.PostInput) (*models.Post, error) {
	query := `
        INSERT INTO posts (title, subtitle, content, tags, links)
        VALUES (:title, :subtitle, :content, :tags, :links)
        RETURNING *
    `

	var post models.Post
	if err := r.namedGet(ctx, &post, query, postArgs{PostInput: in}); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return &post, nil
}

func (r *PostRepositoryImpl) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	query := `SELECT * FROM posts WHERE id = $1`

	var post models.Post
	err := r.DB.GetContext(ctx, &post, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("post with id %d: %w", id, ErrPostNotFound)
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return &post, nil
}

// List returns every post, newest first. Equal timestamps fall back to id
// so the order is deterministic.
func (r *PostRepositoryImpl) List(ctx context.Context) ([]models.Post, error) {
	query := `SELECT * FROM posts ORDER BY created_at DESC, id DESC`

	posts := []models.Post{}
	if err := r.DB.SelectContext(ctx, &posts, query); err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return posts, nil
}

// Update replaces all five editable fields in a single statement.
func (r *PostRepositoryImpl) Update(ctx context.Context, id int64, in models.PostInput) (*models.Post, error) {
	query := `
		UPDATE posts SET
			title = :title,
			subtitle = :subtitle,
			content = :content,
			tags = :tags,
			links = :links,
			updated_at = now()
		WHERE id = :id
		RETURNING *
	`

	var post models.Post
	err := r.namedGet(ctx, &post, query, postArgs{ID: id, PostInput: in})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("post with id %d: %w", id, ErrPostNotFound)
		}
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	return &post, nil
}

func (r *PostRepositoryImpl) Delete(ctx context.Context, id int64) (*models.Post, error) {
	query := `DELETE FROM posts WHERE id = $1 RETURNING *`

	var post models.Post
	err := r.DB.GetContext(ctx, &post, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("post with id %d: %w", id, ErrPostNotFound)
		}
		return nil, fmt.Errorf("failed to delete post: %w", err)
	}

	return &post, nil
}

func (r *PostRepositoryImpl) namedGet(ctx context.Context, dest any, query string, arg any) error {
	bound, args, err := sqlx.Named(query, arg)
	if err != nil {
		return err
	}
	return r.DB.GetContext(ctx, dest, r.DB.Rebind(bound), args...)
}
