// Package services contains the business logic of the image pipeline:
// upload authorization, event-driven analysis, and gallery queries.
package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/pixelprompt/internal/common"
	"github.com/dmitrijs2005/pixelprompt/internal/config"
	"github.com/dmitrijs2005/pixelprompt/internal/logging"
	"github.com/dmitrijs2005/pixelprompt/internal/models"
	"github.com/dmitrijs2005/pixelprompt/internal/shared"
)

// timeNow is indirected so tests can pin the clock.
var timeNow = time.Now

// PutURLSigner issues a presigned write URL scoped to a single key,
// content type, and content length.
type PutURLSigner interface {
	PresignPut(ctx context.Context, key, contentType string, contentLength int64, ttl time.Duration) (string, error)
}

var allowedFileTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/jpg":  {},
	"image/png":  {},
}

// UploadService validates upload requests and issues scoped, time-limited
// direct-upload authorizations. It is stateless; concurrent calls are
// independent.
type UploadService struct {
	signer      PutURLSigner
	maxFileSize int64
	urlTTL      time.Duration
	logger      logging.Logger
}

func NewUploadService(signer PutURLSigner, cfg *config.Config, logger logging.Logger) *UploadService {
	return &UploadService{
		signer:      signer,
		maxFileSize: cfg.MaxUploadBytes,
		urlTTL:      cfg.UploadURLTTL,
		logger:      logger,
	}
}

// Authorize validates the request and returns a presigned upload URL plus
// the storage key the client must write to. No object or metadata is
// created here; the authorization is the only side effect.
func (s *UploadService) Authorize(ctx context.Context, req *models.UploadRequest) (*models.UploadResponse, error) {
	if req.FileName == "" || req.FileType == "" || req.FileSize == 0 {
		return nil, fmt.Errorf("%w: Missing required fields: fileName, fileType, fileSize", common.ErrValidation)
	}

	if _, ok := allowedFileTypes[strings.ToLower(req.FileType)]; !ok {
		return nil, fmt.Errorf("%w: Invalid file type. Only JPEG and PNG images are allowed.", common.ErrValidation)
	}

	if req.FileSize > s.maxFileSize {
		return nil, fmt.Errorf("%w: File size exceeds maximum of %dMB", common.ErrValidation, s.maxFileSize/1024/1024)
	}

	userID := req.UserID
	if userID == "" {
		userID = common.DefaultUserID
	}

	key, err := buildStorageKey(userID, req.FileName)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to generate storage key: %v", common.ErrInternal, err)
	}

	url, err := s.signer.PresignPut(ctx, key, req.FileType, req.FileSize, s.urlTTL)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to sign upload URL: %v", common.ErrInternal, err)
	}

	s.logger.Info(ctx, "issued upload authorization", "key", key, "userId", userID, "fileSize", req.FileSize)

	return &models.UploadResponse{
		UploadURL: url,
		S3Key:     key,
		ExpiresIn: int(s.urlTTL.Seconds()),
	}, nil
}

// buildStorageKey derives uploads/{userId}/{unixMillis}-{random16hex}.{ext}.
// The random component prevents key collision and guessing.
func buildStorageKey(userID, fileName string) (string, error) {
	randomID, err := shared.MakeRandHexString(8)
	if err != nil {
		return "", err
	}

	parts := strings.Split(fileName, ".")
	ext := strings.ToLower(parts[len(parts)-1])

	return fmt.Sprintf("%s/%s/%d-%s.%s", common.UploadKeyPrefix, userID, timeNow().UnixMilli(), randomID, ext), nil
}
