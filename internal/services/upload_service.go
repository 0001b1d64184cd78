package services

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"jobapply_backend/internal/logger"
	"jobapply_backend/internal/storage"
	"jobapply_backend/internal/wizard"
	"jobapply_backend/pkg/apperrors"

	"github.com/google/uuid"
)

// ImageUploader turns an in-memory image into a publicly addressable
// URL. Failure is signalled by an empty string: the upload adapter
// never aborts a submission, it logs and lets the caller continue with
// a missing image.
type ImageUploader interface {
	UploadImage(ctx context.Context, img *wizard.ImageFile) string
}

type UploadConfig struct {
	MaxSize      int64
	AllowedTypes []string
}

type uploadService struct {
	storage storage.Storage
	config  UploadConfig
}

func NewUploadService(store storage.Storage, config UploadConfig) ImageUploader {
	return &uploadService{
		storage: store,
		config:  config,
	}
}

// UploadImage stores the image under a fresh UUID-based key and
// resolves its public URL. Returns "" for a nil image, a rejected file
// or any storage failure. No retries.
func (s *uploadService) UploadImage(ctx context.Context, img *wizard.ImageFile) string {
	if img == nil {
		return ""
	}

	if err := s.validate(img); err != nil {
		logger.CtxWarn(ctx, "image rejected", "name", img.Name, "error", err.Error())
		return ""
	}

	key := StorageKey(img.Name)

	if err := s.storage.Save(ctx, key, bytes.NewReader(img.Data), img.ContentType); err != nil {
		logger.CtxWithError(ctx, "image upload failed", err, "key", key)
		return ""
	}

	url, err := s.storage.GetURL(ctx, key)
	if err != nil {
		// Save succeeded, so this path is close to unreachable; treat
		// it as an upload failure all the same.
		logger.CtxWithError(ctx, "url resolution failed", err, "key", key)
		return ""
	}

	return url
}

func (s *uploadService) validate(img *wizard.ImageFile) error {
	if s.config.MaxSize > 0 && int64(len(img.Data)) > s.config.MaxSize {
		return fmt.Errorf("%w: %d bytes, limit %d", apperrors.ErrFileTooLarge, len(img.Data), s.config.MaxSize)
	}
	if len(s.config.AllowedTypes) > 0 {
		allowed := false
		for _, t := range s.config.AllowedTypes {
			if strings.EqualFold(t, img.ContentType) {
				allowed = true
				break
			}
		}
		if !allowed {
			return fmt.Errorf("%w: %q", apperrors.ErrInvalidFileType, img.ContentType)
		}
	}
	return nil
}

// StorageKey generates a collision-resistant object key, keeping the
// original file extension.
func StorageKey(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return uuid.NewString() + ext
}
