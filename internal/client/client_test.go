package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogapi/internal/models"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL+"/", srv.Client())
}

func TestClient_ListPosts(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/posts", r.URL.Path)
		writeJSON(w, http.StatusOK, []models.Post{{ID: 2, Title: "B"}, {ID: 1, Title: "A"}})
	})

	posts, err := c.ListPosts(context.Background())

	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "B", posts[0].Title)
	assert.Equal(t, 1, calls)
}

func TestClient_CreatePost(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		var in models.PostInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		now := time.Now().UTC()
		writeJSON(w, http.StatusCreated, models.Post{ID: 9, Title: in.Title, Content: in.Content, Tags: in.Tags, CreatedAt: now, UpdatedAt: now})
	})
	c.SetToken("tok")

	post, err := c.CreatePost(context.Background(), models.PostInput{Title: "T", Content: "C", Tags: models.StringPtr("go")})

	require.NoError(t, err)
	assert.Equal(t, int64(9), post.ID)
	assert.Equal(t, []string{"go"}, post.TagList())
}

func TestClient_Errors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     any
		category error
		message  string
	}{
		{"Validation", http.StatusBadRequest, map[string]string{"error": "Title and content are required"}, ErrValidation, "Title and content are required"},
		{"Not found", http.StatusNotFound, map[string]string{"error": "Post not found"}, ErrNotFound, "Post not found or failed to load."},
		{"Unauthorized", http.StatusUnauthorized, map[string]string{"error": "Authentication required"}, ErrUnauthorized, "Please log in as admin and try again."},
		{"Rate limited", http.StatusTooManyRequests, map[string]string{"error": "Too many requests"}, ErrRateLimited, "Too many requests, please try again later."},
		{"Server", http.StatusInternalServerError, map[string]string{"error": "Internal server error"}, ErrServer, "Something went wrong on the server. Please try again later."},
		{"Server without JSON", http.StatusBadGateway, "bad gateway", ErrServer, "Something went wrong on the server. Please try again later."},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			calls := 0
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				calls++
				writeJSON(w, tc.status, tc.body)
			})

			_, err := c.GetPost(context.Background(), 1)

			require.Error(t, err)
			assert.ErrorIs(t, err, tc.category)
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tc.status, apiErr.StatusCode)
			assert.Equal(t, tc.message, UserMessage(err))
			assert.Equal(t, 1, calls, "calls are fire-once")
		})
	}
}

func TestClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := New(url, nil).ListPosts(context.Background())

	require.Error(t, err)
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
	assert.Equal(t, "Unable to reach the blog API. Please check your connection.", UserMessage(err))
}

func TestClient_DeleteUpdateHealth(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodDelete && r.URL.Path == "/api/posts/4":
			writeJSON(w, http.StatusOK, map[string]string{"message": "Post deleted successfully"})
		case r.Method == http.MethodPut && r.URL.Path == "/api/posts/4":
			var in models.PostInput
			_ = json.NewDecoder(r.Body).Decode(&in)
			writeJSON(w, http.StatusOK, models.Post{ID: 4, Title: in.Title, Content: in.Content})
		case r.URL.Path == "/api/health":
			writeJSON(w, http.StatusOK, map[string]string{"status": "OK", "timestamp": "2025-01-01T00:00:00.000Z"})
		case r.URL.Path == "/api/stats":
			writeJSON(w, http.StatusOK, map[string]any{"posts": 3, "database_time": "2025-01-01T00:00:00Z"})
		default:
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Route not found"})
		}
	})
	ctx := context.Background()

	msg, err := c.DeletePost(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, "Post deleted successfully", msg)

	post, err := c.UpdatePost(ctx, 4, models.PostInput{Title: "N", Content: "C"})
	require.NoError(t, err)
	assert.Equal(t, "N", post.Title)

	health, err := c.Health(ctx)
	require.NoError(t, err)
	assert.Equal(t, "OK", health.Status)

	stats, err := c.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Posts)
}

func TestClient_Login(t *testing.T) {
	expires := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			var body map[string]string
			_ = json.NewDecoder(r.Body).Decode(&body)
			if body["password"] != "admin" {
				writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Invalid username or password"})
				return
			}
			writeJSON(w, http.StatusOK, map[string]any{"token": "abc", "expires_at": expires})
		default:
			writeJSON(w, http.StatusOK, map[string]string{"message": fmt.Sprint(r.Header.Get("Authorization"))})
		}
	})
	ctx := context.Background()

	_, err := c.Login(ctx, "admin", "wrong")
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, c.Token())

	session, err := c.Login(ctx, "admin", "admin")
	require.NoError(t, err)
	assert.Equal(t, "abc", session.Token)
	assert.True(t, expires.Equal(session.ExpiresAt))

	msg, err := c.DeletePost(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc", msg)
}
