package feed

import (
	"context"
	"fmt"
	"sync"

	"blogapi/internal/models"
)

// Source is the part of the API client a View needs.
type Source interface {
	ListPosts(ctx context.Context) ([]models.Post, error)
	DeletePost(ctx context.Context, id int64) (string, error)
}

// View holds the last fetched collection and the user's filter criteria.
// A failed call records its error and leaves the collection untouched.
type View struct {
	source Source

	mu    sync.RWMutex
	posts []models.Post
	query string
	tag   string
	err   error
}

func NewView(source Source) *View {
	return &View{source: source, posts: []models.Post{}}
}

// Refresh replaces the collection with a fresh fetch.
func (v *View) Refresh(ctx context.Context) error {
	posts, err := v.source.ListPosts(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()

	if err != nil {
		v.err = fmt.Errorf("failed to load posts: %w", err)
		return v.err
	}
	v.posts = posts
	v.err = nil
	return nil
}

// Delete removes post id on the server and, once confirmed, locally.
func (v *View) Delete(ctx context.Context, id int64) error {
	if _, err := v.source.DeletePost(ctx, id); err != nil {
		v.mu.Lock()
		v.err = fmt.Errorf("failed to delete post %d: %w", id, err)
		v.mu.Unlock()
		return v.err
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	kept := make([]models.Post, 0, len(v.posts))
	for _, p := range v.posts {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	v.posts = kept
	v.err = nil
	return nil
}

func (v *View) SetQuery(query string) {
	v.mu.Lock()
	v.query = query
	v.mu.Unlock()
}

func (v *View) SetTag(tag string) {
	v.mu.Lock()
	v.tag = tag
	v.mu.Unlock()
}

// Posts returns a copy of the full loaded collection.
func (v *View) Posts() []models.Post {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return append([]models.Post(nil), v.posts...)
}

// Visible applies the current criteria to the loaded collection.
func (v *View) Visible() []models.Post {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return Filter(v.posts, v.query, v.tag)
}

// Tags lists the selectable tags of the loaded collection.
func (v *View) Tags() []string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return UniqueTags(v.posts)
}

// Filtering reports whether any criterion is set.
func (v *View) Filtering() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.query != "" || v.tag != ""
}

// Err is the error of the last failed call, or nil.
func (v *View) Err() error {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.err
}
