package service

import (
	"context"
	"errors"

	"blogapi/internal/models"
	"blogapi/internal/repository"
)

const titleContentRequired = "Title and content are required"

type PostService interface {
	ListPosts(ctx context.Context) ([]models.Post, error)
	GetPost(ctx context.Context, id int64) (*models.Post, error)
	CreatePost(ctx context.Context, in models.PostInput) (*models.Post, error)
	UpdatePost(ctx context.Context, id int64, in models.PostInput) (*models.Post, error)
	DeletePost(ctx context.Context, id int64) (*models.Post, error)
}

type postService struct {
	postRepo repository.PostRepository
}

func NewPostService(postRepo repository.PostRepository) PostService {
	return &postService{postRepo: postRepo}
}

func (p *postService) ListPosts(ctx context.Context) ([]models.Post, error) {
	posts, err := p.postRepo.List(ctx)
	if err != nil {
		return nil, &StoreError{Op: "list posts", Err: err}
	}
	return posts, nil
}

func (p *postService) GetPost(ctx context.Context, id int64) (*models.Post, error) {
	post, err := p.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapStoreError("get post", id, err)
	}
	return post, nil
}

func (p *postService) CreatePost(ctx context.Context, in models.PostInput) (*models.Post, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	post, err := p.postRepo.Create(ctx, in)
	if err != nil {
		return nil, &StoreError{Op: "create post", Err: err}
	}
	return post, nil
}

// UpdatePost is a full replace; there is no version check, so concurrent
// updates are last-writer-wins.
func (p *postService) UpdatePost(ctx context.Context, id int64, in models.PostInput) (*models.Post, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	post, err := p.postRepo.Update(ctx, id, in)
	if err != nil {
		return nil, mapStoreError("update post", id, err)
	}
	return post, nil
}

func (p *postService) DeletePost(ctx context.Context, id int64) (*models.Post, error) {
	post, err := p.postRepo.Delete(ctx, id)
	if err != nil {
		return nil, mapStoreError("delete post", id, err)
	}
	return post, nil
}

func validate(in models.PostInput) error {
	if err := models.ValidatePostInput(in); err != nil {
		return &ValidationError{Message: titleContentRequired}
	}
	return nil
}

func mapStoreError(op string, id int64, err error) error {
	if errors.Is(err, repository.ErrPostNotFound) {
		return &NotFoundError{ID: id}
	}
	return &StoreError{Op: op, Err: err}
}
