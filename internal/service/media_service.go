package service

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"ai-solutions-go/pkg/log"

	"github.com/google/uuid"
)

// MaxImageSize is the largest accepted upload in bytes.
const MaxImageSize = 10 << 20

// ObjectStore stores uploaded files and returns their public URL.
type ObjectStore interface {
	PutObject(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
}

// MediaService uploads images used by catalog items.
type MediaService interface {
	UploadImage(ctx context.Context, filename, contentType string, size int64, reader io.Reader) (string, error)
}

type mediaService struct {
	store ObjectStore
}

// NewMediaService creates a MediaService.
func NewMediaService(store ObjectStore) MediaService {
	return &mediaService{store: store}
}

// UploadImage stores an image under images/<uuid><ext> and returns its URL.
func (s *mediaService) UploadImage(ctx context.Context, filename, contentType string, size int64, reader io.Reader) (string, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("%w: content type %q is not an image", ErrInvalidInput, contentType)
	}
	if size <= 0 || size > MaxImageSize {
		return "", fmt.Errorf("%w: image size %d outside 1..%d bytes", ErrInvalidInput, size, MaxImageSize)
	}

	objectName := "images/" + uuid.NewString() + strings.ToLower(path.Ext(filename))
	url, err := s.store.PutObject(ctx, objectName, reader, size, contentType)
	if err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}
	log.Infow("image uploaded", "object", objectName, "size", size)
	return url, nil
}
