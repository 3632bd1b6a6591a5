package services

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/dmitrijs2005/pixelprompt/internal/common"
	"github.com/dmitrijs2005/pixelprompt/internal/config"
	"github.com/dmitrijs2005/pixelprompt/internal/logging"
	"github.com/dmitrijs2005/pixelprompt/internal/models"
)

// DefaultGalleryLimit bounds a query when the client does not supply one.
const DefaultGalleryLimit = 50

// RecordLister retrieves stored metadata records for a user.
type RecordLister interface {
	ListByUser(ctx context.Context, userID string, limit int32) ([]models.ImageRecord, error)
}

// GetURLSigner issues a presigned read URL for a stored object.
type GetURLSigner interface {
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
}

// GalleryService reconstructs browsable records with fresh time-limited
// read access. It is stateless; concurrent calls are independent.
type GalleryService struct {
	records RecordLister
	signer  GetURLSigner
	readTTL time.Duration
	logger  logging.Logger
}

func NewGalleryService(records RecordLister, signer GetURLSigner, cfg *config.Config, logger logging.Logger) *GalleryService {
	return &GalleryService{
		records: records,
		signer:  signer,
		readTTL: cfg.ReadURLTTL,
		logger:  logger,
	}
}

// List returns the user's records newest first, each enriched with a fresh
// presigned read URL. A store failure fails the whole request; a
// per-record signing failure only degrades that record.
func (s *GalleryService) List(ctx context.Context, userID string, limit int) (*models.GalleryResponse, error) {
	if userID == "" {
		userID = common.DefaultUserID
	}
	if limit <= 0 {
		limit = DefaultGalleryLimit
	}

	records, err := s.records.ListByUser(ctx, userID, int32(limit))
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []models.ImageRecord{}
	}

	sortByTimestampDesc(records)

	// Signing is side-effect-free, so the fan-out runs concurrently; every
	// record is independent and the response waits for all of them.
	var wg sync.WaitGroup
	for i := range records {
		rec := &records[i]

		// Never trust a URL persisted at analysis time.
		rec.S3URL = ""
		if rec.S3Key == "" {
			continue
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			url, err := s.signer.PresignGet(ctx, rec.S3Key, s.readTTL)
			if err != nil {
				s.logger.Warn(ctx, "failed to presign read URL", "key", rec.S3Key, "error", err.Error())
				return
			}
			rec.S3URL = url
		}()
	}
	wg.Wait()

	return &models.GalleryResponse{Images: records, Count: len(records)}, nil
}

// sortByTimestampDesc orders records newest first, comparing timestamps
// numerically: lexicographic order breaks once values span different digit
// counts. Unparseable timestamps sort last.
func sortByTimestampDesc(records []models.ImageRecord) {
	ts := func(r *models.ImageRecord) int64 {
		n, err := strconv.ParseInt(r.Timestamp, 10, 64)
		if err != nil {
			return 0
		}
		return n
	}
	sort.SliceStable(records, func(i, j int) bool {
		return ts(&records[i]) > ts(&records[j])
	})
}
