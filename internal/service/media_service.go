package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/gabriel-vasile/mimetype"

	"blogapi/internal/models"
	"blogapi/internal/storage"
)

// sniffLen matches mimetype's default read limit.
const sniffLen = 3072

var allowedMediaTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

type MediaService interface {
	Upload(ctx context.Context, fileName string, file io.Reader, size int64) (*models.Media, error)
	Delete(ctx context.Context, objectName string) error
}

type mediaService struct {
	storage storage.Storage
	maxSize int64
}

func NewMediaService(storage storage.Storage, maxSize int64) MediaService {
	return &mediaService{storage: storage, maxSize: maxSize}
}

// Upload sniffs the content type from the first bytes instead of trusting
// the client header.
func (m *mediaService) Upload(ctx context.Context, fileName string, file io.Reader, size int64) (*models.Media, error) {
	if m.maxSize > 0 && size > m.maxSize {
		return nil, &ValidationError{Message: fmt.Sprintf("File is too large (max %d MB)", m.maxSize/(1024*1024))}
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(file, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	head = head[:n]

	mtype := mimetype.Detect(head)
	if !allowedMediaTypes[mtype.String()] {
		return nil, &ValidationError{Message: "Unsupported file type. Allowed: JPEG, PNG, GIF, WebP"}
	}

	body := io.MultiReader(bytes.NewReader(head), file)

	objectName, url, err := m.storage.UploadImage(ctx, fileName, mtype.String(), mtype.Extension(), body, size)
	if err != nil {
		return nil, &StoreError{Op: "upload media", Err: err}
	}

	slog.InfoContext(ctx, "media uploaded", "object", objectName, "size", size, "mime", mtype.String())

	return &models.Media{
		URL:        url,
		ObjectName: objectName,
		FileName:   fileName,
		Size:       size,
		MimeType:   mtype.String(),
	}, nil
}

func (m *mediaService) Delete(ctx context.Context, objectName string) error {
	if err := m.storage.DeleteImage(ctx, objectName); err != nil {
		return &StoreError{Op: "delete media", Err: err}
	}
	return nil
}
