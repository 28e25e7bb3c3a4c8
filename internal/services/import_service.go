package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"shop-catalog-api/internal/storage"
)

// importService implements the ImportService interface
type importService struct {
	storage       storage.ObjectStorage
	uploadPrefix  string
	presignExpiry time.Duration
}

// NewImportService creates a new import service instance
func NewImportService(store storage.ObjectStorage, uploadPrefix string, presignExpiry time.Duration) ImportService {
	return &importService{
		storage:       store,
		uploadPrefix:  uploadPrefix,
		presignExpiry: presignExpiry,
	}
}

// IssueUploadURL returns a presigned write URL for uploaded/<fileName>
func (s *importService) IssueUploadURL(ctx context.Context, fileName string) (*UploadTarget, error) {
	if strings.TrimSpace(fileName) == "" {
		return nil, fmt.Errorf("%w: fileName is required", ErrBadRequest)
	}

	key := s.uploadPrefix + fileName
	url, err := s.storage.PresignUpload(ctx, key, s.presignExpiry)
	if err != nil {
		return nil, fmt.Errorf("failed to issue upload URL for %s: %w", key, err)
	}

	logrus.WithFields(logrus.Fields{
		"key":    key,
		"expiry": s.presignExpiry.String(),
	}).Info("Issued upload URL")

	return &UploadTarget{URL: url, Expiry: s.presignExpiry}, nil
}
