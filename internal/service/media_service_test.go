package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blogapi/internal/models"
)

type MockStorage struct {
	mock.Mock
	uploaded []byte
}

func (m *MockStorage) UploadImage(ctx context.Context, fileName, contentType, ext string, file io.Reader, size int64) (string, string, error) {
	m.uploaded, _ = io.ReadAll(file)
	args := m.Called(ctx, fileName, contentType, ext, size)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockStorage) DeleteImage(ctx context.Context, objectName string) error {
	args := m.Called(ctx, objectName)
	return args.Error(0)
}

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func TestMediaService_Upload(t *testing.T) {
	ctx := context.Background()

	t.Run("PNG is stored with sniffed type", func(t *testing.T) {
		store := new(MockStorage)
		store.On("UploadImage", mock.Anything, "pic.jpg", "image/png", ".png", int64(len(pngHeader))).
			Return("media/2025/01/x.png", "http://localhost:9000/blog-media/media/2025/01/x.png", nil)

		media, err := NewMediaService(store, 1<<20).Upload(ctx, "pic.jpg", bytes.NewReader(pngHeader), int64(len(pngHeader)))

		require.NoError(t, err)
		assert.Equal(t, "image/png", media.MimeType)
		assert.Equal(t, "media/2025/01/x.png", media.ObjectName)
		assert.Equal(t, pngHeader, store.uploaded)
		store.AssertExpectations(t)
	})

	t.Run("Text is rejected", func(t *testing.T) {
		store := new(MockStorage)

		_, err := NewMediaService(store, 1<<20).Upload(ctx, "evil.png", strings.NewReader("#!/bin/sh\necho hi\n"), 18)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Message, "Unsupported file type")
		store.AssertNotCalled(t, "UploadImage", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Too large", func(t *testing.T) {
		store := new(MockStorage)

		_, err := NewMediaService(store, 10).Upload(ctx, "big.png", bytes.NewReader(pngHeader), 11)

		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("Storage failure", func(t *testing.T) {
		store := new(MockStorage)
		store.On("UploadImage", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return("", "", errors.New("bucket gone"))

		_, err := NewMediaService(store, 0).Upload(ctx, "a.png", bytes.NewReader(pngHeader), int64(len(pngHeader)))

		var serr *StoreError
		assert.ErrorAs(t, err, &serr)
	})
}

func TestMediaService_Delete(t *testing.T) {
	store := new(MockStorage)
	store.On("DeleteImage", mock.Anything, "media/2025/01/x.png").Return(nil).Once()
	store.On("DeleteImage", mock.Anything, "missing").Return(errors.New("no such key")).Once()
	svc := NewMediaService(store, 0)

	assert.NoError(t, svc.Delete(context.Background(), "media/2025/01/x.png"))

	var serr *StoreError
	assert.ErrorAs(t, svc.Delete(context.Background(), "missing"), &serr)
}

type stubStats struct {
	count int
	now   time.Time
	err   error
}

func (s stubStats) CountPosts(context.Context) (int, error)          { return s.count, s.err }
func (s stubStats) DatabaseTime(context.Context) (time.Time, error) { return s.now, s.err }

func TestStatsService_GetStats(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	stats, err := NewStatsService(stubStats{count: 3, now: now}).GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &models.Stats{Posts: 3, DatabaseTime: now}, stats)

	_, err = NewStatsService(stubStats{err: errors.New("down")}).GetStats(context.Background())
	var serr *StoreError
	assert.ErrorAs(t, err, &serr)
}
